// Package agent drives an Anthropic tool-use loop over the log store
// and extracts displayable text from invocation results.
package agent

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"

	"github.com/nabuskey/sparklog/internal/logstore"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultMaxTokens caps the response size per turn.
	DefaultMaxTokens = 4096

	// DefaultMaxTurns bounds the tool-use loop.
	DefaultMaxTurns = 10

	// RateLimit is the ceiling on API calls per second.
	RateLimit = 2.0
)

// systemPrompt orients the model before the tool-use loop starts.
const systemPrompt = "You are a log triage assistant. Answer questions about " +
	"application logs by querying the logs table with the execute_query tool. " +
	"Prefer small, targeted SELECT queries. Summarize findings concisely."

// Agent runs questions against the log store through the Anthropic API.
type Agent struct {
	client     anthropic.Client
	store      *logstore.Store
	limiter    *rate.Limiter
	model      string
	maxTokens  int
	maxTurns   int
	clientOpts []option.RequestOption
}

// Option configures an Agent.
type Option func(*Agent)

// WithModel sets the model used for completions.
func WithModel(model string) Option {
	return func(a *Agent) {
		if model != "" {
			a.model = model
		}
	}
}

// WithMaxTokens sets the per-turn response token cap.
func WithMaxTokens(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// WithMaxTurns bounds the number of tool-use round trips.
func WithMaxTurns(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTurns = n
		}
	}
}

// WithAPIKey sets the API key, overriding the environment.
func WithAPIKey(key string) Option {
	return func(a *Agent) {
		a.clientOpts = append(a.clientOpts, option.WithAPIKey(key))
	}
}

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(a *Agent) {
		a.clientOpts = append(a.clientOpts, option.WithBaseURL(url))
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Agent) {
		a.clientOpts = append(a.clientOpts, option.WithHTTPClient(hc))
	}
}

// New creates an Agent over the given store. The Anthropic API key is
// read from ANTHROPIC_API_KEY unless overridden with WithAPIKey.
func New(store *logstore.Store, opts ...Option) *Agent {
	a := &Agent{
		store:     store,
		limiter:   rate.NewLimiter(rate.Limit(RateLimit), 1),
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		maxTurns:  DefaultMaxTurns,
	}

	for _, opt := range opts {
		opt(a)
	}
	a.client = anthropic.NewClient(a.clientOpts...)

	return a
}

// Ask runs the tool-use loop for a single question and returns the
// resulting transcript. Tool calls are executed against the store and
// their results fed back to the model until it stops requesting tools
// or the turn budget runs out.
func (a *Agent) Ask(ctx context.Context, question string) (InvokeResult, error) {
	transcript := []Message{{Role: "user", Content: question}}

	tool := queryTool()
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
		Tools: []anthropic.ToolUnionParam{{OfTool: &tool}},
	}

	for turn := 0; turn < a.maxTurns; turn++ {
		if err := a.limiter.Wait(ctx); err != nil {
			return MessagesResult(transcript), fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := a.client.Messages.New(ctx, params)
		if err != nil {
			return MessagesResult(transcript), fmt.Errorf("anthropic API call: %w", err)
		}

		var text strings.Builder
		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range resp.Content {
			switch variant := block.AsAny().(type) {
			case anthropic.TextBlock:
				text.WriteString(variant.Text)
			case anthropic.ToolUseBlock:
				content, isError := runQueryTool(a.store, variant.Input)
				toolResults = append(toolResults,
					anthropic.NewToolResultBlock(variant.ID, content, isError))
			}
		}

		if text.Len() > 0 {
			transcript = append(transcript, Message{Role: "assistant", Content: text.String()})
		}

		params.Messages = append(params.Messages, resp.ToParam())
		if len(toolResults) == 0 {
			return MessagesResult(transcript), nil
		}
		params.Messages = append(params.Messages, anthropic.NewUserMessage(toolResults...))
	}

	return MessagesResult(transcript), fmt.Errorf("no final answer after %d turns", a.maxTurns)
}
