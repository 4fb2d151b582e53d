package store

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelection = errors.New("store: no task selected")
	ErrOutOfRange  = errors.New("store: position out of range")
)

// Position is a 0-based index into the snapshot returned by List. The zero
// value means nothing was selected.
type Position struct {
	index int
	set   bool
}

func At(index int) Position {
	return Position{index: index, set: true}
}

func (p Position) Index() (int, bool) {
	return p.index, p.set
}

func (p Position) String() string {
	if !p.set {
		return "none"
	}
	return fmt.Sprintf("%d", p.index)
}

type SelectionError struct {
	Position Position
	Len      int
	Err      error
}

func (e *SelectionError) Error() string {
	if errors.Is(e.Err, ErrNoSelection) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s (have %d)", e.Err, e.Position, e.Len)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
