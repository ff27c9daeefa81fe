// Package memstore provides the in-memory task sequence for a session.
// Tasks live for the lifetime of the process and are never written out.
package memstore

import (
	"slices"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store keeps tasks in insertion order.
type Store struct {
	tasks []*domain.Task
}

// New creates a Store holding the given tasks in order.
func New(tasks ...*domain.Task) *Store {
	return &Store{tasks: slices.Clone(tasks)}
}

// List returns the live tasks in row order. The slice itself is a copy, so
// callers may not reorder or grow the sequence through it.
func (s *Store) List() []*domain.Task {
	return slices.Clone(s.tasks)
}

// Append adds a task as the last row.
func (s *Store) Append(task *domain.Task) {
	s.tasks = append(s.tasks, task)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
