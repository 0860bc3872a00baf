// Package main provides the sparklog MCP stdio server.
//
// It builds the in-memory log store at startup and exposes the
// execute_query tool to any MCP-speaking agent framework over stdio.
package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/phuslu/log"

	"github.com/nabuskey/sparklog/internal/config"
	"github.com/nabuskey/sparklog/internal/logstore"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	configPath := os.Getenv("SPARKLOG_CONFIG")
	if configPath == "" {
		configPath = config.ConfigFile
	}

	// Warn-level console logging on stderr keeps MCP stdio framing clean.
	logger := log.Logger{
		Level:      log.WarnLevel,
		TimeFormat: "15:04:05",
		Writer:     &log.ConsoleWriter{Writer: os.Stderr},
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	store, err := logstore.Open()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open store")
	}
	defer store.Close()

	result, err := store.LoadFiles(cfg.LogFiles)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load log files")
	}
	for _, w := range result.Warnings {
		logger.Warn().Msg(w)
	}

	mcpServer := server.NewMCPServer(
		"sparklog",
		Version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createExecuteQueryTool(), handleExecuteQuery(store, logger))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
