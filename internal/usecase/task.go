package usecase

import (
	"context"
	"fmt"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
}

func (u *TaskUsecase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
	}

	created, err := u.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (u *TaskUsecase) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

type ListTasksInput struct {
	UserID string
	Page   int
	Limit  int
}

type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

type ListTasksResult struct {
	Tasks      []*domain.Task
	Pagination Pagination
}

func (u *TaskUsecase) ListTasks(ctx context.Context, input ListTasksInput) (ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	tasks, total, err := u.repo.List(ctx, repository.ListTasksInput{
		UserID: input.UserID,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return ListTasksResult{}, fmt.Errorf("list tasks: %w", err)
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return ListTasksResult{
		Tasks: tasks,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

func (u *TaskUsecase) UpdateTask(ctx context.Context, id, userID string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := u.repo.Update(ctx, id, userID, repository.UpdateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, id, userID string) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
