package logstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeLogFile writes a JSON log file into dir and returns its path.
func writeLogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// openTestStore creates an empty in-memory store.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

const sampleEntries = `[
	{"application_id": "app-20150708-0001", "message": "Java heap space", "level": "ERROR", "time": "15/07/08 10:21:52"},
	{"application_id": "app-20150708-0001", "message": "Registered executor", "level": "INFO", "time": "15/07/08 10:21:53"},
	{"application_id": "app-20150708-0002", "message": "Disk quota exceeded", "level": "ERROR", "time": "15/07/08 10:22:01"}
]`

func TestLoadFilesAllMissing(t *testing.T) {
	store := openTestStore(t)

	result, err := store.LoadFiles([]string{"oom.json", "disk.json", "throttle.json"})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	if result.Total != 0 {
		t.Errorf("Total = %d, want 0", result.Total)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("len(Warnings) = %d, want 3", len(result.Warnings))
	}
	for _, w := range result.Warnings {
		if !strings.Contains(w, "not found, skipping") {
			t.Errorf("warning %q does not mention missing file", w)
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}

func TestLoadFilesCountsAndIDs(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	path := writeLogFile(t, dir, "oom.json", sampleEntries)

	result, err := store.LoadFiles([]string{path})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if len(result.Files) != 1 || result.Files[0].Entries != 3 {
		t.Errorf("Files = %+v, want one file with 3 entries", result.Files)
	}

	// IDs form a contiguous increasing sequence in insertion order.
	res, err := store.Query("SELECT id FROM logs ORDER BY id")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(res.Rows))
	}
	for i, row := range res.Rows {
		if id, ok := row[0].(int64); !ok || id != int64(i+1) {
			t.Errorf("Rows[%d][0] = %v, want %d", i, row[0], i+1)
		}
	}
}

func TestLoadFilesMultipleInOrder(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	first := writeLogFile(t, dir, "oom.json",
		`[{"application_id": "a", "message": "one", "level": "INFO", "time": "15/07/08 10:00:00"}]`)
	second := writeLogFile(t, dir, "disk.json",
		`[{"application_id": "b", "message": "two", "level": "INFO", "time": "15/07/08 09:00:00"}]`)

	result, err := store.LoadFiles([]string{first, "missing.json", second})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("len(Warnings) = %d, want 1", len(result.Warnings))
	}

	// Insertion order follows file order, not timestamp order.
	res, err := store.Query("SELECT message FROM logs ORDER BY id")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	got := []string{res.Rows[0][0].(string), res.Rows[1][0].(string)}
	if got[0] != "one" || got[1] != "two" {
		t.Errorf("messages = %v, want [one two]", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	const source = "15/07/08 10:21:52"
	path := writeLogFile(t, dir, "oom.json",
		fmt.Sprintf(`[{"application_id": "a", "message": "m", "level": "INFO", "time": "%s"}]`, source))

	if _, err := store.LoadFiles([]string{path}); err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	res, err := store.Query("SELECT time FROM logs")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(res.Rows))
	}

	stored, ok := res.Rows[0][0].(string)
	if !ok {
		t.Fatalf("time column = %T, want string", res.Rows[0][0])
	}

	want, err := time.Parse(SourceTimeLayout, source)
	if err != nil {
		t.Fatalf("parsing source time: %v", err)
	}
	got, err := time.Parse(StoredTimeLayout, stored)
	if err != nil {
		t.Fatalf("parsing stored time %q: %v", stored, err)
	}
	if !got.Equal(want) {
		t.Errorf("stored time = %v, want %v", got, want)
	}
}

func TestQueryCount(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	path := writeLogFile(t, dir, "oom.json", sampleEntries)
	result, err := store.LoadFiles([]string{path})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	res, err := store.Query("SELECT COUNT(*) FROM logs")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 1 || len(res.Rows[0]) != 1 {
		t.Fatalf("Rows = %v, want single row with single value", res.Rows)
	}
	if count, ok := res.Rows[0][0].(int64); !ok || count != int64(result.Total) {
		t.Errorf("COUNT(*) = %v, want %d", res.Rows[0][0], result.Total)
	}
}

func TestQueryLevelFilter(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	path := writeLogFile(t, dir, "oom.json", sampleEntries)
	if _, err := store.LoadFiles([]string{path}); err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	res, err := store.Query("SELECT id, message FROM logs WHERE level = 'ERROR'")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(res.Rows))
	}

	// Insertion order is preserved.
	wantMessages := []string{"Java heap space", "Disk quota exceeded"}
	for i, row := range res.Rows {
		if msg := row[1].(string); msg != wantMessages[i] {
			t.Errorf("Rows[%d] message = %q, want %q", i, msg, wantMessages[i])
		}
	}
}

func TestQueryEmptyResult(t *testing.T) {
	store := openTestStore(t)

	res, err := store.Query("SELECT * FROM logs WHERE level = 'FATAL'")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(res.Rows))
	}
	if len(res.Columns) == 0 {
		t.Error("Columns is empty, want projection column names")
	}
}

func TestQueryInvalidSQL(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Query("SELECT nope FROM missing_table")
	if err == nil {
		t.Fatal("Query returned nil error for invalid SQL")
	}

	var qerr *QueryError
	if !errors.As(err, &qerr) {
		t.Errorf("error type = %T, want *QueryError", err)
	}
	if !strings.Contains(err.Error(), "missing_table") {
		t.Errorf("error %q does not mention the query", err)
	}
}

func TestLoadFilesMalformedEntries(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	// One bad timestamp and one non-object element; the two good
	// entries around them still load.
	path := writeLogFile(t, dir, "mixed.json", `[
		{"application_id": "a", "message": "good", "level": "INFO", "time": "15/07/08 10:00:00"},
		{"application_id": "b", "message": "bad time", "level": "WARN", "time": "not-a-time"},
		42,
		{"application_id": "c", "message": "also good", "level": "INFO", "time": "15/07/08 10:00:02"}
	]`)

	result, err := store.LoadFiles([]string{path})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 warnings", result.Warnings)
	}
}

func TestLoadFilesNotAnArray(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	path := writeLogFile(t, dir, "bad.json", `{"application_id": "a"}`)

	result, err := store.LoadFiles([]string{path})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Total = %d, want 0", result.Total)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want 1 warning", result.Warnings)
	}
}

func TestNullApplicationID(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	path := writeLogFile(t, dir, "noapp.json",
		`[{"message": "no app id", "level": "WARN", "time": "15/07/08 10:00:00"}]`)

	if _, err := store.LoadFiles([]string{path}); err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}

	res, err := store.Query("SELECT COUNT(*) FROM logs WHERE application_id IS NULL")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if count := res.Rows[0][0].(int64); count != 1 {
		t.Errorf("NULL application_id count = %d, want 1", count)
	}
}
