package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/sandeepkv93/homemaint/internal/storage"
	"github.com/sandeepkv93/homemaint/internal/store"
)

const (
	MsgSaved         = "Task saved successfully."
	MsgDeleted       = "Task deleted successfully."
	MsgFillAllFields = "Please fill in all fields."
	MsgInvalidDate   = "Invalid date format. Please use YYYY-MM-DD."
)

// Service is the part of tracker.Tracker the bound handlers drive.
type Service interface {
	Add(ctx context.Context, description, dueText string, freq model.Frequency) (model.Task, error)
	Lines() []string
	Delete(ctx context.Context, pos store.Position) (model.Task, error)
	Complete(ctx context.Context, pos store.Position) (model.Task, error)
	Activity(ctx context.Context, limit int) ([]storage.Activity, error)
}

type BindOptions struct {
	DefaultFrequency model.Frequency
	ActivityLimit    int
}

// Bind returns handlers that run every command against svc. Failures come
// back as errors whose text is already fit to show a user.
func Bind(ctx context.Context, svc Service, opts BindOptions) Handlers {
	if opts.DefaultFrequency == "" {
		opts.DefaultFrequency = model.FrequencyMonthly
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = 10
	}
	return Handlers{
		Add: func(a AddArgs) (Result, error) {
			freq := opts.DefaultFrequency
			if a.Frequency != "" {
				parsed, err := model.ParseFrequency(a.Frequency)
				if err != nil {
					// Let the store reject it so validation order holds.
					parsed = model.Frequency(a.Frequency)
				}
				freq = parsed
			}
			if _, err := svc.Add(ctx, a.Description, a.Due, freq); err != nil {
				return Result{}, userErrorOf(err, "")
			}
			return Result{Message: MsgSaved}, nil
		},
		Remove: func(s SelectArgs) (Result, error) {
			if _, err := svc.Delete(ctx, s.Position()); err != nil {
				return Result{}, userErrorOf(err, "delete")
			}
			return Result{Message: MsgDeleted}, nil
		},
		Done: func(s SelectArgs) (Result, error) {
			task, err := svc.Complete(ctx, s.Position())
			if err != nil {
				return Result{}, userErrorOf(err, "mark as complete")
			}
			return Result{Message: CompletedMessage(task)}, nil
		},
		List: func() (Result, error) {
			lines := svc.Lines()
			if len(lines) == 0 {
				return Result{Message: "No tasks scheduled."}, nil
			}
			return Result{
				Message: fmt.Sprintf("%d task(s) scheduled", len(lines)),
				Lines:   NumberedLines(lines),
			}, nil
		},
		Activity: func(a ActivityArgs) (Result, error) {
			limit := a.Limit
			if limit <= 0 {
				limit = opts.ActivityLimit
			}
			items, err := svc.Activity(ctx, limit)
			if err != nil {
				return Result{}, fmt.Errorf("read activity: %w", err)
			}
			if len(items) == 0 {
				return Result{Message: "No activity yet."}, nil
			}
			lines := make([]string, 0, len(items))
			for _, item := range items {
				lines = append(lines, FormatActivity(item))
			}
			return Result{Message: fmt.Sprintf("%d activity entries", len(items)), Lines: lines}, nil
		},
		Help: func() (Result, error) {
			return Result{Message: "commands:", Lines: Usage()}, nil
		},
	}
}

func CompletedMessage(task model.Task) string {
	return fmt.Sprintf("Task '%s' marked as complete.", task.Description)
}

// Explain turns a tracker error into the sentence shown to the user. verb
// names the attempted action for selection failures.
func Explain(err error, verb string) string {
	var sel *store.SelectionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrMissingField):
		return MsgFillAllFields
	case errors.Is(err, model.ErrInvalidDateFormat):
		return MsgInvalidDate
	case errors.Is(err, store.ErrNoSelection):
		if verb == "" {
			return "Please select a task."
		}
		return fmt.Sprintf("Please select a task to %s.", verb)
	case errors.As(err, &sel) && errors.Is(err, store.ErrOutOfRange):
		idx, _ := sel.Position.Index()
		return fmt.Sprintf("There is no task %d; %d task(s) scheduled.", idx+1, sel.Len)
	default:
		return err.Error()
	}
}

// userError keeps the original chain for errors.Is while replacing the text.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func userErrorOf(err error, verb string) error {
	return &userError{msg: Explain(err, verb), err: err}
}

func NumberedLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, fmt.Sprintf("%d. %s", i+1, line))
	}
	return out
}

func FormatActivity(a storage.Activity) string {
	return fmt.Sprintf("%s  %-9s %s - Due: %s - Frequency: %s",
		a.OccurredAt.Local().Format("2006-01-02 15:04"),
		strings.ToUpper(string(a.Action)),
		a.Description,
		a.DueDate,
		a.Frequency,
	)
}
