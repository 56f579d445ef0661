package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskboard/internal/domain"
	"taskboard/internal/email"
	"taskboard/internal/repository"
)

// passwordHasher and tokenIssuer are the slices of internal/auth this
// usecase needs. Defined at point of use so tests can inject fakes.
type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

type tokenIssuer interface {
	Issue(userID string) (string, error)
}

type AuthUsecase struct {
	users  repository.UserRepository
	hasher passwordHasher
	tokens tokenIssuer
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher passwordHasher, tokens tokenIssuer, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Register creates a user with a hashed password and returns a fresh token.
// A taken email yields domain.ErrEmailTaken, whether caught by the lookup
// or by the unique constraint during a concurrent registration.
func (u *AuthUsecase) Register(ctx context.Context, emailAddr, password string) (string, error) {
	_, err := u.users.FindByEmail(ctx, emailAddr)
	if err == nil {
		return "", domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, emailAddr, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	// Best effort; a failed welcome email never fails the registration.
	if err := u.email.Send(ctx, user.Email, "Welcome to Taskboard",
		"<p>Your account is ready. Sign in and start tracking tasks.</p>"); err != nil {
		u.logger.WarnContext(ctx, "send welcome email", "error", err)
	}

	return token, nil
}

// Login verifies credentials and returns a fresh token. An unknown email
// and a wrong password both yield domain.ErrInvalidCredentials so callers
// cannot probe which emails are registered.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := u.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Corrupted stored hash is an internal failure, not a bad login.
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
