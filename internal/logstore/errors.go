package logstore

import "fmt"

// QueryError is returned when a query cannot be executed, for example
// invalid SQL syntax or a reference to a nonexistent column or table.
// It propagates directly to the caller; there is no retry or recovery.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("executing query %q: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
