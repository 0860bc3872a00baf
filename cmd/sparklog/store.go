package main

import (
	"github.com/nabuskey/sparklog/internal/config"
	"github.com/nabuskey/sparklog/internal/logstore"
)

// buildStore loads configuration and builds the in-memory store from
// the configured log files. The store is rebuilt on every invocation:
// it lives only as long as the process.
func buildStore() (*logstore.Store, *config.Config, *logstore.LoadResult) {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	store, err := logstore.Open()
	if err != nil {
		exitWithError(ExitDataError, "opening store: %v", err)
	}

	result, err := store.LoadFiles(cfg.LogFiles)
	if err != nil {
		store.Close()
		exitWithError(ExitDataError, "loading log files: %v", err)
	}

	printWarnings(result.Warnings)
	return store, cfg, result
}
