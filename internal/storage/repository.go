package storage

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidAction = errors.New("storage: invalid activity action")

type Repository interface {
	RecordActivity(ctx context.Context, in Activity) (int64, error)
	ListActivity(ctx context.Context, filter ActivityListFilter) ([]Activity, error)
	CountActivity(ctx context.Context, action Action) (int, error)
	PurgeActivity(ctx context.Context, before time.Time) (int64, error)
	Reset(ctx context.Context) error
}
