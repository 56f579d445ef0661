package repository

import (
	"context"

	"taskboard/internal/domain"
)

type ListTasksInput struct {
	UserID string
	Offset int
	Limit  int
}

// UpdateTaskInput carries the mutable task fields. Nil means "leave the
// stored value unchanged".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskRepository scopes every operation by owner. Implementations must make
// owner-scoped mutations atomic (a single conditional statement), and must
// report a task that is absent or owned by someone else as
// domain.ErrTaskNotFound in both cases.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id, userID string) (*domain.Task, error)
	// List returns one page of the owner's tasks, newest first, along with
	// the owner's total task count.
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, int, error)
	Update(ctx context.Context, id, userID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}
