package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	id, err := repo.RecordActivity(testContext(t), Activity{
		TaskID:      "task-rt-1",
		Action:      ActionAdded,
		Description: "Roundtrip task",
		DueDate:     "2026-03-01",
		Frequency:   "Monthly",
		OccurredAt:  now,
	})
	if err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}

	items, err := repo.ListActivity(testContext(t), ActivityListFilter{TaskID: "task-rt-1"})
	if err != nil {
		t.Fatalf("list after roundtrip failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != id || items[0].Description != "Roundtrip task" {
		t.Fatalf("unexpected entries after roundtrip: %#v", items)
	}
}
