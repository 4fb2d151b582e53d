package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingField      = errors.New("model: missing required field")
	ErrInvalidDateFormat = errors.New("model: invalid date format, use YYYY-MM-DD")
	ErrInvalidFrequency  = errors.New("model: invalid frequency")
)

const (
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldFrequency   = "frequency"
)

// ValidationError reports which candidate field was rejected. Err is one of
// the model sentinels so callers can branch with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Err, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Task struct {
	ID          string
	Description string
	Due         Date
	Frequency   Frequency
	CreatedAt   time.Time
}

// String renders the task the way every list display shows it.
func (t Task) String() string {
	return fmt.Sprintf("%s - Due: %s - Frequency: %s", t.Description, t.Due, t.Frequency)
}

// NewTask validates a candidate and builds the task. Checks run in order:
// missing fields, due date, frequency.
func NewTask(id, description, dueText string, freq Frequency, createdAt time.Time) (Task, error) {
	if description == "" {
		return Task{}, &ValidationError{Field: FieldDescription, Err: ErrMissingField}
	}
	if dueText == "" {
		return Task{}, &ValidationError{Field: FieldDueDate, Err: ErrMissingField}
	}
	due, err := ParseDate(dueText)
	if err != nil {
		return Task{}, &ValidationError{Field: FieldDueDate, Err: ErrInvalidDateFormat}
	}
	if !freq.IsValid() {
		return Task{}, &ValidationError{Field: FieldFrequency, Err: fmt.Errorf("%w: %q", ErrInvalidFrequency, freq)}
	}
	return Task{
		ID:          id,
		Description: description,
		Due:         due,
		Frequency:   freq,
		CreatedAt:   createdAt,
	}, nil
}
