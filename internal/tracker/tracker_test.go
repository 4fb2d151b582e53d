package tracker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/sandeepkv93/homemaint/internal/scheduler"
	"github.com/sandeepkv93/homemaint/internal/storage"
	"github.com/sandeepkv93/homemaint/internal/store"
)

type fakeNotices struct {
	scheduled []scheduler.DueNotice
	cancelled []string
	err       error
}

func (f *fakeNotices) Schedule(ev scheduler.DueNotice) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, ev)
	return nil
}

func (f *fakeNotices) Cancel(taskID string) int {
	f.cancelled = append(f.cancelled, taskID)
	return 1
}

type failingJournal struct{}

func (failingJournal) RecordActivity(context.Context, storage.Activity) (int64, error) {
	return 0, errors.New("disk full")
}

func (failingJournal) ListActivity(context.Context, storage.ActivityListFilter) ([]storage.Activity, error) {
	return nil, errors.New("disk full")
}

func (failingJournal) CountActivity(context.Context, storage.Action) (int, error) {
	return 0, errors.New("disk full")
}

func (failingJournal) PurgeActivity(context.Context, time.Time) (int64, error) {
	return 0, errors.New("disk full")
}

func setupTracker(t *testing.T) (*Tracker, *fakeNotices) {
	t.Helper()
	repo, err := storage.OpenSQLite(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	notices := &fakeNotices{}
	tr := New(store.New(), Deps{
		Journal:  repo,
		Notices:  notices,
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) },
	})
	return tr, notices
}

func TestTrackerLifecycleIsJournaled(t *testing.T) {
	tr, notices := setupTracker(t)
	ctx := context.Background()

	gutters, err := tr.Add(ctx, "Clean gutters", "2025-11-15", model.FrequencyQuarterly)
	if err != nil {
		t.Fatalf("add gutters: %v", err)
	}
	if _, err := tr.Add(ctx, "Test smoke alarms", "2025-12-01", model.FrequencyMonthly); err != nil {
		t.Fatalf("add alarms: %v", err)
	}
	if _, err := tr.Add(ctx, "Bleed radiators", "2025-10-01", model.FrequencyQuarterly); err != nil {
		t.Fatalf("add radiators: %v", err)
	}

	if len(notices.scheduled) != 3 {
		t.Fatalf("expected 3 scheduled notices, got %d", len(notices.scheduled))
	}
	if got := notices.scheduled[0].TriggerAt.Format(time.RFC3339); got != "2025-11-15T00:00:00Z" {
		t.Fatalf("unexpected trigger: %s", got)
	}

	done, err := tr.Complete(ctx, store.At(0))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.ID != gutters.ID {
		t.Fatalf("completed %q, want %q", done.Description, gutters.Description)
	}
	deleted, err := tr.Delete(ctx, store.At(1))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Description != "Bleed radiators" {
		t.Fatalf("deleted %q", deleted.Description)
	}
	if len(notices.cancelled) != 2 || notices.cancelled[0] != gutters.ID {
		t.Fatalf("unexpected cancellations: %v", notices.cancelled)
	}

	lines := tr.Lines()
	if len(lines) != 1 || lines[0] != "Test smoke alarms - Due: 2025-12-01 - Frequency: Monthly" {
		t.Fatalf("unexpected remaining tasks: %v", lines)
	}

	entries, err := tr.Activity(ctx, 10)
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 journal entries, got %d", len(entries))
	}
	if entries[0].Action != storage.ActionDeleted || entries[1].Action != storage.ActionCompleted {
		t.Fatalf("unexpected newest entries: %#v", entries[:2])
	}
	count, err := tr.CompletedCount(ctx)
	if err != nil || count != 1 {
		t.Fatalf("completed count = %d, %v", count, err)
	}
}

func TestTrackerPassesCoreErrorsThrough(t *testing.T) {
	tr, notices := setupTracker(t)
	ctx := context.Background()

	if _, err := tr.Add(ctx, "Test", "2025-02-30", model.FrequencyMonthly); !errors.Is(err, model.ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
	if _, err := tr.Delete(ctx, store.Position{}); !errors.Is(err, store.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if _, err := tr.Complete(ctx, store.At(0)); !errors.Is(err, store.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if len(notices.scheduled) != 0 || len(notices.cancelled) != 0 {
		t.Fatalf("failed operations touched notices: %+v", notices)
	}
	entries, err := tr.Activity(ctx, 10)
	if err != nil || len(entries) != 0 {
		t.Fatalf("failed operations were journaled: %v %v", entries, err)
	}
}

func TestTrackerSurvivesJournalAndNoticeFailures(t *testing.T) {
	var logs bytes.Buffer
	tr := New(nil, Deps{
		Journal: failingJournal{},
		Notices: &fakeNotices{err: errors.New("engine stopped")},
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
	})

	task, err := tr.Add(context.Background(), "Service AC unit", "2026-05-01", model.FrequencyQuarterly)
	if err != nil {
		t.Fatalf("add should succeed despite journal failure: %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected task in store, got %d", tr.Len())
	}
	if !strings.Contains(logs.String(), "record activity failed") || !strings.Contains(logs.String(), "schedule due notice failed") {
		t.Fatalf("expected warnings in log, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "task_id="+task.ID) {
		t.Fatalf("expected task id in log, got %q", logs.String())
	}
}

func TestTrackerWithoutJournal(t *testing.T) {
	tr := New(store.New(), Deps{})
	entries, err := tr.Activity(context.Background(), 5)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty activity, got %v %v", entries, err)
	}
	n, err := tr.CompletedCount(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected zero completed count, got %d %v", n, err)
	}
	purged, err := tr.PurgeActivity(context.Background(), model.Date{Year: 2026, Month: time.January, Day: 1})
	if err != nil || purged != 0 {
		t.Fatalf("expected no-op purge, got %d %v", purged, err)
	}
}

func TestTrackerOverdue(t *testing.T) {
	tr, _ := setupTracker(t)
	cases := []struct {
		due  string
		want bool
	}{
		{"2025-11-15", true},
		{"2026-02-08", true},
		{"2026-02-09", false},
		{"2026-03-01", false},
	}
	for _, tc := range cases {
		task, err := tr.Add(context.Background(), "Check "+tc.due, tc.due, model.FrequencyWeekly)
		if err != nil {
			t.Fatalf("add %s: %v", tc.due, err)
		}
		if got := tr.Overdue(task); got != tc.want {
			t.Fatalf("overdue(%s) = %v, want %v", tc.due, got, tc.want)
		}
	}
}

func TestTrackerPurgeActivity(t *testing.T) {
	var logs bytes.Buffer
	tr, _ := setupTracker(t)
	tr.logger = slog.New(slog.NewTextHandler(&logs, nil))
	ctx := context.Background()

	if _, err := tr.Add(ctx, "Clean gutters", "2025-11-15", model.FrequencyQuarterly); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := tr.Complete(ctx, store.At(0)); err != nil {
		t.Fatalf("complete: %v", err)
	}

	kept, err := tr.PurgeActivity(ctx, model.Date{Year: 2026, Month: time.February, Day: 9})
	if err != nil || kept != 0 {
		t.Fatalf("purge before today = %d, %v", kept, err)
	}
	purged, err := tr.PurgeActivity(ctx, model.Date{Year: 2026, Month: time.February, Day: 10})
	if err != nil || purged != 2 {
		t.Fatalf("purge before tomorrow = %d, %v", purged, err)
	}
	entries, err := tr.Activity(ctx, 10)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected empty journal, got %v %v", entries, err)
	}
	if !strings.Contains(logs.String(), "activity purged") || !strings.Contains(logs.String(), "overdue=true") {
		t.Fatalf("expected purge and overdue in log, got %q", logs.String())
	}

	failing := New(nil, Deps{Journal: failingJournal{}})
	if _, err := failing.PurgeActivity(ctx, model.Date{Year: 2026, Month: time.February, Day: 10}); err == nil {
		t.Fatalf("expected purge error from failing journal")
	}
}
