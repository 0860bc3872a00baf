package agent

import "fmt"

// Message is one entry in an agent conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// resultKind discriminates the known shapes an agent invocation can
// produce.
type resultKind int

const (
	kindUnknown resultKind = iota
	kindMessages
	kindText
)

// InvokeResult is the outcome of an agent invocation. It is a variant
// type: a conversation transcript, a bare text payload, or an
// unrecognized value carried through for error reporting.
type InvokeResult struct {
	kind     resultKind
	messages []Message
	text     string
	raw      any
}

// MessagesResult wraps a conversation transcript.
func MessagesResult(messages []Message) InvokeResult {
	return InvokeResult{kind: kindMessages, messages: messages}
}

// TextResult wraps a bare text payload.
func TextResult(text string) InvokeResult {
	return InvokeResult{kind: kindText, text: text}
}

// UnknownResult wraps a value of unrecognized shape.
func UnknownResult(v any) InvokeResult {
	return InvokeResult{kind: kindUnknown, raw: v}
}

// Messages returns the transcript for a messages result, or nil.
func (r InvokeResult) Messages() []Message {
	return r.messages
}

// ExtractResponse produces a best-effort display string from an agent
// invocation result. For a transcript it returns the last message's
// content; for a text payload the payload itself; for anything else an
// error string naming the value's runtime type. It never fails.
func ExtractResponse(result InvokeResult) string {
	switch result.kind {
	case kindMessages:
		if len(result.messages) == 0 {
			return "No messages found in result"
		}
		return result.messages[len(result.messages)-1].Content
	case kindText:
		return result.text
	default:
		return fmt.Sprintf("Error accessing result: unrecognized result shape\nResult type: %T\nResult: %v",
			result.raw, result.raw)
	}
}
