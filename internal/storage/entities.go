package storage

import "time"

type Action string

const (
	ActionAdded     Action = "added"
	ActionDeleted   Action = "deleted"
	ActionCompleted Action = "completed"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionAdded, ActionDeleted, ActionCompleted:
		return true
	default:
		return false
	}
}

// Activity is one lifecycle event. Task fields are copied so the entry stays
// readable after the task has left the store.
type Activity struct {
	ID          int64
	TaskID      string
	Action      Action
	Description string
	DueDate     string
	Frequency   string
	OccurredAt  time.Time
}

type ActivityListFilter struct {
	TaskID string
	Action Action
	Limit  int
	Offset int
}
