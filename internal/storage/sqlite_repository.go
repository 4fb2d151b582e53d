package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// Fixed width so text ordering in SQL matches time ordering.
	sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	MemoryDSN        = ":memory:"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens path and applies migrations. An in-memory database lives
// per connection, so the pool is pinned to one connection for MemoryDSN.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		path = MemoryDSN
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == MemoryDSN {
		db.SetMaxOpenConns(1)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) RecordActivity(ctx context.Context, in Activity) (int64, error) {
	if !in.Action.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAction, in.Action)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activity (task_id, action, description, due_date, frequency, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.TaskID, string(in.Action), in.Description, in.DueDate, in.Frequency, mustTime(in.OccurredAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListActivity returns newest entries first; id breaks ties between entries
// recorded in the same instant.
func (r *SQLiteRepository) ListActivity(ctx context.Context, filter ActivityListFilter) ([]Activity, error) {
	query := `SELECT id, task_id, action, description, due_date, frequency, occurred_at FROM activity`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.TaskID != "" {
		clauses = append(clauses, "task_id = ?")
		args = append(args, filter.TaskID)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, string(filter.Action))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY occurred_at DESC, id DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Activity, 0)
	for rows.Next() {
		item, scanErr := scanActivity(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// CountActivity counts all entries when action is empty.
func (r *SQLiteRepository) CountActivity(ctx context.Context, action Action) (int, error) {
	query := `SELECT COUNT(*) FROM activity`
	args := make([]any, 0, 1)
	if action != "" {
		query += ` WHERE action = ?`
		args = append(args, string(action))
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLiteRepository) PurgeActivity(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activity WHERE occurred_at < ?`, mustTime(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Reset drops the journal schema and recreates it empty.
func (r *SQLiteRepository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := MigrateDown(r.db); err != nil {
		return err
	}
	return MigrateUp(r.db)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (Activity, error) {
	var out Activity
	var action string
	var occurred string
	if err := s.Scan(&out.ID, &out.TaskID, &action, &out.Description, &out.DueDate, &out.Frequency, &occurred); err != nil {
		return Activity{}, err
	}
	occurredAt, err := parseRequiredTime(occurred)
	if err != nil {
		return Activity{}, err
	}
	out.Action = Action(action)
	out.OccurredAt = occurredAt
	return out, nil
}
