package main

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nabuskey/sparklog/internal/agent"
)

// createExecuteQueryTool returns the execute_query tool definition.
// The name and description match the tool the ask command advertises to
// the Anthropic API, so agents see one contract on both paths.
func createExecuteQueryTool() mcp.Tool {
	return mcp.NewTool(agent.QueryToolName,
		mcp.WithDescription(agent.QueryToolDescription),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("SQL SELECT query to execute"),
		),
	)
}
