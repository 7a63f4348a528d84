package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAdminSignIn(t *testing.T) {
	repo := newFakeAdminRepo()
	auth := NewAdminAuth(repo, "test-secret", time.Hour, nopLogger{})

	if err := auth.Bootstrap(context.Background(), "admin@example.com", "s3cret"); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	token, err := auth.SignIn(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("claims.Email = %q", claims.Email)
	}
}

func TestAdminSignInRejectsBadCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	auth := NewAdminAuth(repo, "test-secret", time.Hour, nopLogger{})
	auth.Bootstrap(context.Background(), "admin@example.com", "s3cret")

	if _, err := auth.SignIn(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := auth.SignIn(context.Background(), "nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestBootstrapSkipsExistingAdmins(t *testing.T) {
	repo := newFakeAdminRepo()
	auth := NewAdminAuth(repo, "test-secret", time.Hour, nopLogger{})

	auth.Bootstrap(context.Background(), "first@example.com", "pw")
	auth.Bootstrap(context.Background(), "second@example.com", "pw")

	count, _ := repo.Count(context.Background())
	if count != 1 {
		t.Errorf("admin count = %d, want 1", count)
	}
}

func TestBootstrapWithoutCredentialsIsNoop(t *testing.T) {
	repo := newFakeAdminRepo()
	auth := NewAdminAuth(repo, "test-secret", time.Hour, nopLogger{})

	if err := auth.Bootstrap(context.Background(), "", ""); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	count, _ := repo.Count(context.Background())
	if count != 0 {
		t.Errorf("admin count = %d, want 0", count)
	}
}
