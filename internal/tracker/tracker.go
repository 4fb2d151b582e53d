package tracker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/sandeepkv93/homemaint/internal/scheduler"
	"github.com/sandeepkv93/homemaint/internal/storage"
	"github.com/sandeepkv93/homemaint/internal/store"
)

// Journal is the slice of storage.Repository the tracker writes to.
type Journal interface {
	RecordActivity(ctx context.Context, in storage.Activity) (int64, error)
	ListActivity(ctx context.Context, filter storage.ActivityListFilter) ([]storage.Activity, error)
	CountActivity(ctx context.Context, action storage.Action) (int, error)
	PurgeActivity(ctx context.Context, before time.Time) (int64, error)
}

type Notices interface {
	Schedule(ev scheduler.DueNotice) error
	Cancel(taskID string) int
}

// Deps are optional collaborators; nil members are skipped.
type Deps struct {
	Journal  Journal
	Notices  Notices
	Logger   *slog.Logger
	Location *time.Location
	Now      func() time.Time
}

// Tracker is what adapters hold. Core results and errors come straight from
// the store; journal and notice failures are logged and swallowed because
// the store has already changed by then.
type Tracker struct {
	store   *store.Store
	journal Journal
	notices Notices
	logger  *slog.Logger
	loc     *time.Location
	now     func() time.Time
}

func New(st *store.Store, deps Deps) *Tracker {
	if st == nil {
		st = store.New()
	}
	t := &Tracker{
		store:   st,
		journal: deps.Journal,
		notices: deps.Notices,
		logger:  deps.Logger,
		loc:     deps.Location,
		now:     deps.Now,
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if t.loc == nil {
		t.loc = time.Local
	}
	if t.now == nil {
		t.now = time.Now
	}
	return t
}

func (t *Tracker) Add(ctx context.Context, description, dueText string, freq model.Frequency) (model.Task, error) {
	task, err := t.store.Add(description, dueText, freq)
	if err != nil {
		t.logger.Debug("task rejected", "error", err)
		return model.Task{}, err
	}
	t.logger.Info("task added", "task_id", task.ID, "due", task.Due.String(), "frequency", string(task.Frequency), "overdue", t.Overdue(task))
	t.record(ctx, storage.ActionAdded, task)
	if t.notices != nil {
		if err := t.notices.Schedule(scheduler.NoticeFor(task, t.loc)); err != nil {
			t.logger.Warn("schedule due notice failed", "task_id", task.ID, "error", err)
		}
	}
	return task, nil
}

// Overdue reports whether the task fell due before today in the tracker's
// location.
func (t *Tracker) Overdue(task model.Task) bool {
	return task.Due.Before(model.DateOf(t.now().In(t.loc)))
}

func (t *Tracker) List() []model.Task {
	return t.store.List()
}

func (t *Tracker) Lines() []string {
	return t.store.Lines()
}

func (t *Tracker) Len() int {
	return t.store.Len()
}

func (t *Tracker) Delete(ctx context.Context, pos store.Position) (model.Task, error) {
	task, err := t.store.RemoveAt(pos)
	if err != nil {
		t.logger.Debug("delete rejected", "position", pos.String(), "error", err)
		return model.Task{}, err
	}
	t.logger.Info("task deleted", "task_id", task.ID, "position", pos.String())
	t.settle(ctx, storage.ActionDeleted, task)
	return task, nil
}

func (t *Tracker) Complete(ctx context.Context, pos store.Position) (model.Task, error) {
	task, err := t.store.CompleteAt(pos)
	if err != nil {
		t.logger.Debug("complete rejected", "position", pos.String(), "error", err)
		return model.Task{}, err
	}
	t.logger.Info("task completed", "task_id", task.ID, "position", pos.String())
	t.settle(ctx, storage.ActionCompleted, task)
	return task, nil
}

// Activity returns the newest journal entries, or none without a journal.
func (t *Tracker) Activity(ctx context.Context, limit int) ([]storage.Activity, error) {
	if t.journal == nil {
		return []storage.Activity{}, nil
	}
	return t.journal.ListActivity(ctx, storage.ActivityListFilter{Limit: limit})
}

func (t *Tracker) CompletedCount(ctx context.Context) (int, error) {
	if t.journal == nil {
		return 0, nil
	}
	return t.journal.CountActivity(ctx, storage.ActionCompleted)
}

// PurgeActivity drops journal entries recorded before midnight of the given
// day in the tracker's location.
func (t *Tracker) PurgeActivity(ctx context.Context, before model.Date) (int64, error) {
	if t.journal == nil {
		return 0, nil
	}
	n, err := t.journal.PurgeActivity(ctx, before.In(t.loc))
	if err != nil {
		t.logger.Warn("purge activity failed", "before", before.String(), "error", err)
		return 0, err
	}
	t.logger.Info("activity purged", "before", before.String(), "count", n)
	return n, nil
}

func (t *Tracker) settle(ctx context.Context, action storage.Action, task model.Task) {
	t.record(ctx, action, task)
	if t.notices != nil {
		if n := t.notices.Cancel(task.ID); n > 0 {
			t.logger.Debug("due notice cancelled", "task_id", task.ID)
		}
	}
}

func (t *Tracker) record(ctx context.Context, action storage.Action, task model.Task) {
	if t.journal == nil {
		return
	}
	_, err := t.journal.RecordActivity(ctx, storage.Activity{
		TaskID:      task.ID,
		Action:      action,
		Description: task.Description,
		DueDate:     task.Due.String(),
		Frequency:   string(task.Frequency),
		OccurredAt:  t.now().UTC(),
	})
	if err != nil {
		t.logger.Warn("record activity failed", "task_id", task.ID, "action", string(action), "error", err)
	}
}
