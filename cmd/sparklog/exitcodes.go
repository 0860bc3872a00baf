package main

// Exit codes shared by all sparklog commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file)
	ExitDataError   = 3 // Data error (store could not be built)
	ExitQueryError  = 4 // Query error (invalid SQL, unknown columns)
	ExitAgentError  = 5 // Agent error (API failure, no final answer)
)
