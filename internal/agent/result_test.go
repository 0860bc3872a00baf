package agent

import (
	"strings"
	"testing"
)

func TestExtractResponseLastMessage(t *testing.T) {
	result := MessagesResult([]Message{
		{Role: "user", Content: "how many errors?"},
		{Role: "assistant", Content: "hello"},
	})

	if got := ExtractResponse(result); got != "hello" {
		t.Errorf("ExtractResponse = %q, want %q", got, "hello")
	}
}

func TestExtractResponseSingleMessage(t *testing.T) {
	result := MessagesResult([]Message{{Content: "hello"}})

	if got := ExtractResponse(result); got != "hello" {
		t.Errorf("ExtractResponse = %q, want %q", got, "hello")
	}
}

func TestExtractResponseEmptyTranscript(t *testing.T) {
	result := MessagesResult(nil)

	want := "No messages found in result"
	if got := ExtractResponse(result); got != want {
		t.Errorf("ExtractResponse = %q, want %q", got, want)
	}
}

func TestExtractResponseText(t *testing.T) {
	if got := ExtractResponse(TextResult("plain payload")); got != "plain payload" {
		t.Errorf("ExtractResponse = %q, want %q", got, "plain payload")
	}
}

func TestExtractResponseUnknown(t *testing.T) {
	got := ExtractResponse(UnknownResult(42))

	if !strings.Contains(got, "Error accessing result") {
		t.Errorf("ExtractResponse = %q, want it to contain %q", got, "Error accessing result")
	}
	if !strings.Contains(got, "int") {
		t.Errorf("ExtractResponse = %q, want it to contain the type name %q", got, "int")
	}
	if !strings.Contains(got, "42") {
		t.Errorf("ExtractResponse = %q, want it to contain the value", got)
	}
}

func TestExtractResponseNeverPanics(t *testing.T) {
	// Zero value and nil payloads all terminate in a string.
	for _, result := range []InvokeResult{
		{},
		UnknownResult(nil),
		TextResult(""),
	} {
		_ = ExtractResponse(result)
	}
}
