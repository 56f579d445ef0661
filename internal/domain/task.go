package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound covers both a missing task and a task owned by another
// user. Callers must not be able to tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
