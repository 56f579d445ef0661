package auth_test

import (
	"errors"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
)

const testSecret = "token-test-secret-at-least-32-chars!!"

func TestTokenService_IssueThenVerify_ReturnsSubject(t *testing.T) {
	s := auth.NewTokenService([]byte(testSecret))

	tok, err := s.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "user-1" {
		t.Errorf("subject = %q, want %q", subject, "user-1")
	}
}

func TestTokenService_ExpiresAfterOneHour(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	s := auth.NewTokenServiceWithClock([]byte(testSecret), now)

	tok, err := s.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Just inside the window.
	clock = clock.Add(59 * time.Minute)
	if _, err := s.Verify(tok); err != nil {
		t.Fatalf("verify at 59m: %v", err)
	}

	// Past expiry.
	clock = clock.Add(2 * time.Minute)
	_, err = s.Verify(tok)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("verify at 61m: err = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_TamperedToken_FailsSignature(t *testing.T) {
	s := auth.NewTokenService([]byte(testSecret))

	tok, err := s.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one byte of the payload.
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'A' {
		b[mid] = 'B'
	} else {
		b[mid] = 'A'
	}

	_, err = s.Verify(string(b))
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("verify tampered token: err = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_WrongSecret_FailsSignature(t *testing.T) {
	issuer := auth.NewTokenService([]byte(testSecret))
	verifier := auth.NewTokenService([]byte("different-secret-that-is-32-chars!!!"))

	tok, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("verify with wrong secret: err = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_DistinctTokensPerIssue(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	s := auth.NewTokenServiceWithClock([]byte(testSecret), now)

	t1, err := s.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	clock = clock.Add(time.Second)
	t2, err := s.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if t1 == t2 {
		t.Error("tokens issued at different instants are identical")
	}
	for _, tok := range []string{t1, t2} {
		if _, err := s.Verify(tok); err != nil {
			t.Errorf("verify %q: %v", tok, err)
		}
	}
}
