// Package main provides the sparklog CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nabuskey/sparklog/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath is the configuration file to load
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sparklog",
	Short: "Agent-first Spark log triage tool",
	Long: `sparklog loads JSON Spark log files into an in-memory SQLite database
and answers free-form SQL queries against it.

The query capability is exposed to AI agents two ways: the ask command
runs an Anthropic tool-use loop directly, and sparklog-mcp serves the
execute_query tool over MCP stdio. All commands output JSON by default
for easy integration with agents and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the configuration file")
	rootCmd.Version = Version
}
