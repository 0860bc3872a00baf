package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nabuskey/sparklog/internal/agent"
)

func init() {
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the agent a question about the loaded logs",
	Long: `Ask a natural-language question about the loaded logs.

The question is sent to the Anthropic API together with the
execute_query tool; the model queries the store as many times as it
needs and the final answer is printed. Requires ANTHROPIC_API_KEY in
the environment or a .env file.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

// AskResponse is the response for the ask command.
type AskResponse struct {
	Answer   string          `json:"answer"`
	Messages []agent.Message `json:"messages"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, cfg, _ := buildStore()
	defer store.Close()

	a := agent.New(store,
		agent.WithModel(cfg.Model),
		agent.WithMaxTokens(cfg.MaxTokens),
		agent.WithMaxTurns(cfg.MaxTurns),
	)

	result, err := a.Ask(context.Background(), args[0])
	if err != nil {
		exitWithError(ExitAgentError, "%v", err)
	}

	answer := agent.ExtractResponse(result)

	if humanOutput {
		fmt.Println(renderMarkdown(answer))
	} else {
		outputJSON(AskResponse{
			Answer:   answer,
			Messages: result.Messages(),
		})
	}

	return nil
}

// renderMarkdown renders the answer as terminal Markdown, falling back
// to the raw text if the renderer cannot be built.
func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return rendered
}
