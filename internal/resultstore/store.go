// internal/resultstore/store.go
// Package resultstore persists test runs and their metrics in a DuckDB
// database with a versioned schema.
package resultstore

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"gauntlet/internal/logging"
)

// SchemaVersion is the schema revision this build writes and accepts.
const SchemaVersion = 1

//go:embed schema.sql
var schemaDDL string

// Store wraps the results database connection.
type Store struct {
	db      *sql.DB
	backend string
}

// Open connects to the database at path, applying the schema on first use and
// verifying the recorded schema version otherwise. A version mismatch is an
// error; callers treat it as fatal.
func Open(path, backend string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("resultstore: open %s: %w", path, err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, backend: backend}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func ensureSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow(
		"SELECT count(*) FROM information_schema.tables WHERE table_name = 'schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("resultstore: inspect schema: %w", err)
	}

	if tableCount == 0 {
		if _, err := db.Exec(schemaDDL); err != nil {
			return fmt.Errorf("resultstore: apply schema: %w", err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("resultstore: record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		return fmt.Errorf("resultstore: read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("resultstore: schema version mismatch: expected %d, got %d", SchemaVersion, version)
	}
	return nil
}

// CreateRun inserts a test_runs row and returns its generated run id, the
// first 12 hex digits of a fresh UUID.
func (s *Store) CreateRun(modelName, testSuite, testName, quantization string) (string, error) {
	runID := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	_, err := s.db.Exec(
		"INSERT INTO test_runs (run_id, model_name, test_suite, test_name, quantization, backend) VALUES (?, ?, ?, ?, ?, ?)",
		runID, modelName, testSuite, testName, nullable(quantization), s.backend,
	)
	if err != nil {
		return "", fmt.Errorf("resultstore: create run: %w", err)
	}
	logging.LogEvent("run created: run_id=%s model=%s test=%s", runID, modelName, testName)
	return runID, nil
}

// RecordResult inserts one metric row for a run. Metadata may be nil.
func (s *Store) RecordResult(runID, modelName, testName, metricName string, metricValue float64, metadata map[string]string) error {
	var meta any
	if metadata != nil {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("resultstore: encode metadata: %w", err)
		}
		meta = string(encoded)
	}
	_, err := s.db.Exec(
		"INSERT INTO test_results (run_id, model_name, test_name, metric_name, metric_value, metadata) VALUES (?, ?, ?, ?, ?, ?)",
		runID, modelName, testName, metricName, metricValue, meta,
	)
	if err != nil {
		return fmt.Errorf("resultstore: record result: %w", err)
	}
	logging.LogEvent("result recorded: run_id=%s model=%s metric=%s value=%g", runID, modelName, metricName, metricValue)
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
