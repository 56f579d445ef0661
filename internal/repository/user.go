package repository

import (
	"context"

	"taskboard/internal/domain"
)

type UserRepository interface {
	// Create persists a new user and returns it with its generated ID.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
