package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nabuskey/sparklog/internal/logstore"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show store contents and configuration",
	RunE:  runInfo,
}

// InfoResponse is the response for the info command.
type InfoResponse struct {
	LogFiles []string            `json:"log_files"`
	Files    []logstore.FileLoad `json:"files"`
	Total    int                 `json:"total"`
	Levels   map[string]int      `json:"levels"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	store, cfg, result := buildStore()
	defer store.Close()

	levels, err := levelCounts(store)
	if err != nil {
		exitWithError(ExitError, "counting levels: %v", err)
	}

	if humanOutput {
		fmt.Printf("Log files: %v\n", cfg.LogFiles)
		for _, f := range result.Files {
			fmt.Printf("  %s: %d entries\n", f.Path, f.Entries)
		}
		fmt.Printf("Total entries: %d\n", result.Total)
		for level, count := range levels {
			fmt.Printf("  %s: %d\n", level, count)
		}
	} else {
		outputJSON(InfoResponse{
			LogFiles: cfg.LogFiles,
			Files:    result.Files,
			Total:    result.Total,
			Levels:   levels,
		})
	}

	return nil
}

// levelCounts returns the number of entries per severity label.
func levelCounts(store *logstore.Store) (map[string]int, error) {
	result, err := store.Query("SELECT level, COUNT(*) FROM logs GROUP BY level")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range result.Rows {
		level, _ := row[0].(string)
		count, _ := row[1].(int64)
		counts[level] = int(count)
	}
	return counts, nil
}
