package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/usecase"
)

type fakeTaskRepo struct {
	create  func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	getByID func(ctx context.Context, id, userID string) (*domain.Task, error)
	list    func(ctx context.Context, input repository.ListTasksInput) ([]*domain.Task, int, error)
	update  func(ctx context.Context, id, userID string, input repository.UpdateTaskInput) (*domain.Task, error)
	delete  func(ctx context.Context, id, userID string) error
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return r.create(ctx, task)
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	return r.getByID(ctx, id, userID)
}

func (r *fakeTaskRepo) List(ctx context.Context, input repository.ListTasksInput) ([]*domain.Task, int, error) {
	return r.list(ctx, input)
}

func (r *fakeTaskRepo) Update(ctx context.Context, id, userID string, input repository.UpdateTaskInput) (*domain.Task, error) {
	return r.update(ctx, id, userID, input)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}

func TestListTasks_DefaultsPageAndLimit(t *testing.T) {
	var captured repository.ListTasksInput
	repo := &fakeTaskRepo{
		list: func(_ context.Context, input repository.ListTasksInput) ([]*domain.Task, int, error) {
			captured = input
			return nil, 0, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).ListTasks(context.Background(), usecase.ListTasksInput{
		UserID: "user-1",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if captured.Offset != 0 {
		t.Errorf("offset = %d, want 0", captured.Offset)
	}
	if captured.Limit != 10 {
		t.Errorf("limit = %d, want default 10", captured.Limit)
	}
	if captured.UserID != "user-1" {
		t.Errorf("userID = %q, want user-1", captured.UserID)
	}
}

func TestListTasks_OffsetFromPage(t *testing.T) {
	var captured repository.ListTasksInput
	repo := &fakeTaskRepo{
		list: func(_ context.Context, input repository.ListTasksInput) ([]*domain.Task, int, error) {
			captured = input
			return nil, 0, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).ListTasks(context.Background(), usecase.ListTasksInput{
		UserID: "user-1",
		Page:   3,
		Limit:  5,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if captured.Offset != 10 {
		t.Errorf("offset = %d, want 10", captured.Offset)
	}
	if captured.Limit != 5 {
		t.Errorf("limit = %d, want 5", captured.Limit)
	}
}

func TestListTasks_PagesIsCeilOfTotalOverLimit(t *testing.T) {
	cases := []struct {
		total, limit, wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{2, 1, 2},
	}

	for _, tc := range cases {
		repo := &fakeTaskRepo{
			list: func(_ context.Context, _ repository.ListTasksInput) ([]*domain.Task, int, error) {
				return nil, tc.total, nil
			},
		}

		result, err := usecase.NewTaskUsecase(repo).ListTasks(context.Background(), usecase.ListTasksInput{
			UserID: "user-1",
			Limit:  tc.limit,
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}

		if result.Pagination.Pages != tc.wantPages {
			t.Errorf("total=%d limit=%d: pages = %d, want %d",
				tc.total, tc.limit, result.Pagination.Pages, tc.wantPages)
		}
		if result.Pagination.Total != tc.total {
			t.Errorf("total = %d, want %d", result.Pagination.Total, tc.total)
		}
	}
}

func TestListTasks_LimitCapped(t *testing.T) {
	var captured repository.ListTasksInput
	repo := &fakeTaskRepo{
		list: func(_ context.Context, input repository.ListTasksInput) ([]*domain.Task, int, error) {
			captured = input
			return nil, 0, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).ListTasks(context.Background(), usecase.ListTasksInput{
		UserID: "user-1",
		Limit:  10_000,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if captured.Limit != 100 {
		t.Errorf("limit = %d, want cap 100", captured.Limit)
	}
}

func TestGetByID_PassesOwnerScope(t *testing.T) {
	var gotID, gotUserID string
	repo := &fakeTaskRepo{
		getByID: func(_ context.Context, id, userID string) (*domain.Task, error) {
			gotID, gotUserID = id, userID
			return &domain.Task{ID: id, UserID: userID}, nil
		},
	}

	_, err := usecase.NewTaskUsecase(repo).GetByID(context.Background(), "task-1", "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotID != "task-1" || gotUserID != "user-1" {
		t.Errorf("repo called with (%q, %q), want (task-1, user-1)", gotID, gotUserID)
	}
}

func TestUpdateTask_NotFoundPropagates(t *testing.T) {
	repo := &fakeTaskRepo{
		update: func(_ context.Context, _, _ string, _ repository.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}

	_, err := usecase.NewTaskUsecase(repo).UpdateTask(context.Background(), "task-1", "user-1", usecase.UpdateTaskInput{})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask_NotFoundPropagates(t *testing.T) {
	repo := &fakeTaskRepo{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrTaskNotFound
		},
	}

	err := usecase.NewTaskUsecase(repo).DeleteTask(context.Background(), "task-1", "user-1")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}
