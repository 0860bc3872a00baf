package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nabuskey/sparklog/internal/logstore"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a SQL query against the loaded logs",
	Long: `Run a free-form SQL query against the logs table and print the rows.

The query text is passed to SQLite unmodified. Examples:

  sparklog query "SELECT COUNT(*) FROM logs"
  sparklog query "SELECT * FROM logs WHERE level = 'ERROR'"
  sparklog query "SELECT level, COUNT(*) FROM logs GROUP BY level"
  sparklog query "SELECT * FROM logs ORDER BY time DESC LIMIT 5"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

// QueryResponse is the response for the query command.
type QueryResponse struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Count   int      `json:"count"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	store, _, _ := buildStore()
	defer store.Close()

	result, err := store.Query(args[0])
	if err != nil {
		var qerr *logstore.QueryError
		if errors.As(err, &qerr) {
			exitWithError(ExitQueryError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Println(strings.Join(result.Columns, "\t"))
		for _, row := range result.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = fmt.Sprintf("%v", v)
			}
			fmt.Println(strings.Join(cells, "\t"))
		}
	} else {
		outputJSON(QueryResponse{
			Columns: result.Columns,
			Rows:    result.Rows,
			Count:   len(result.Rows),
		})
	}

	return nil
}
