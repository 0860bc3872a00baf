package agent

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/nabuskey/sparklog/internal/logstore"
)

// QueryToolName is the name the query tool is exposed under.
const QueryToolName = "execute_query"

// QueryToolDescription describes the tool for tool-use discovery. It is
// shared by the Anthropic tool-use loop and the MCP server.
const QueryToolDescription = "Execute a SQL SELECT query against the in-memory " +
	"logs database. The logs table has columns: id (INTEGER), application_id " +
	"(TEXT), message (TEXT), level (TEXT), time (TIMESTAMP, 'YYYY-MM-DD HH:MM:SS'). " +
	"Returns matching rows as JSON; an empty rows array if nothing matches."

// queryTool returns the execute_query tool definition.
func queryTool() anthropic.ToolParam {
	return anthropic.ToolParam{
		Name:        QueryToolName,
		Description: anthropic.String(QueryToolDescription),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "SQL SELECT query to execute",
				},
			},
			Required: []string{"query"},
		},
	}
}

// queryToolInput is the argument payload of an execute_query call.
type queryToolInput struct {
	Query string `json:"query"`
}

// runQueryTool executes one tool call against the store. Query failures
// are reported as tool error content rather than raised, so the model
// can see the engine's message and correct its SQL.
func runQueryTool(store *logstore.Store, input json.RawMessage) (content string, isError bool) {
	var args queryToolInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "invalid tool input: " + err.Error(), true
	}

	result, err := store.Query(args.Query)
	if err != nil {
		return err.Error(), true
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "encoding query result: " + err.Error(), true
	}
	return string(data), false
}
