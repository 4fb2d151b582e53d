package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/homemaint/internal/model"
)

// Store is the ordered, in-memory task collection. Mutations are serialised
// by mu; List and Lines copy under the read lock so every snapshot is
// consistent.
type Store struct {
	mu    sync.RWMutex
	tasks []model.Task
	newID func() string
	now   func() time.Time
}

func New() *Store {
	return &Store{
		tasks: make([]model.Task, 0),
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Add validates the candidate and appends it. A rejected candidate leaves
// the store untouched.
func (s *Store) Add(description, dueText string, freq model.Frequency) (model.Task, error) {
	task, err := model.NewTask("", description, dueText, freq, s.now().UTC())
	if err != nil {
		return model.Task{}, err
	}
	task.ID = s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *Store) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Lines is List rendered for display, one entry per position.
func (s *Store) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task.String())
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) RemoveAt(pos Position) (model.Task, error) {
	return s.take(pos)
}

// CompleteAt has the same contract as RemoveAt; a completed task is not kept.
func (s *Store) CompleteAt(pos Position) (model.Task, error) {
	return s.take(pos)
}

func (s *Store) take(pos Position) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := pos.Index()
	if !ok {
		return model.Task{}, &SelectionError{Position: pos, Len: len(s.tasks), Err: ErrNoSelection}
	}
	if idx < 0 || idx >= len(s.tasks) {
		return model.Task{}, &SelectionError{Position: pos, Len: len(s.tasks), Err: ErrOutOfRange}
	}
	task := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return task, nil
}
