// internal/resultstore/store_test.go
package resultstore

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path, "ollama")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer store.Close()

	var version int
	if err := store.db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("schema_version query: %v", err)
	}
	if version != SchemaVersion {
		t.Fatalf("version = %d, want %d", version, SchemaVersion)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path, "ollama")
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := store.CreateRun("llama3:latest", "latency", "llama3:latest | precise", ""); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening must accept the existing schema and keep the data.
	store, err = Open(path, "ollama")
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer store.Close()

	var count int
	if err := store.db.QueryRow("SELECT count(*) FROM test_runs").Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Fatalf("test_runs count = %d, want 1", count)
	}
}

func TestOpenSchemaVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path, "ollama")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path, "ollama"); err == nil {
		t.Fatal("mismatched schema version should fail to open")
	}
}

func TestCreateRunAndRecordResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	store, err := Open(path, "ollama")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	runID, err := store.CreateRun("llama3:latest", "reasoning_math", "llama3:latest | precise", "Q4_K_M")
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if len(runID) != 12 {
		t.Fatalf("run id = %q, want 12 characters", runID)
	}

	err = store.RecordResult(runID, "llama3:latest", "llama3:latest | precise",
		"accuracy_percent", 84.6, map[string]string{"system_style": "detailed"})
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if err := store.RecordResult(runID, "llama3:latest", "llama3:latest | precise", "total", 13, nil); err != nil {
		t.Fatalf("RecordResult without metadata: %v", err)
	}

	var metricValue float64
	var metadata sql.NullString
	err = store.db.QueryRow(
		"SELECT metric_value, metadata FROM test_results WHERE metric_name = 'accuracy_percent'",
	).Scan(&metricValue, &metadata)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if metricValue != 84.6 {
		t.Fatalf("metric_value = %g, want 84.6", metricValue)
	}
	if !metadata.Valid || metadata.String == "" {
		t.Fatal("metadata should be stored as JSON text")
	}

	var backend string
	if err := store.db.QueryRow("SELECT backend FROM test_runs WHERE run_id = ?", runID).Scan(&backend); err != nil {
		t.Fatalf("backend query: %v", err)
	}
	if backend != "ollama" {
		t.Fatalf("backend = %q", backend)
	}
}
