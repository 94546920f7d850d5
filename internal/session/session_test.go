package session

import (
	"os"
	"path/filepath"
	"testing"

	"careops-cli/internal/model"
)

func TestSessionPersistence(t *testing.T) {
	dir := t.TempDir()

	t.Run("load with no file is logged out", func(t *testing.T) {
		s := New(dir)
		if err := s.Load(); err != nil {
			t.Fatalf("expected clean load; got %v", err)
		}
		if s.Authenticated() {
			t.Fatalf("expected unauthenticated session")
		}
		if s.Token() != "" {
			t.Fatalf("expected empty token; got %q", s.Token())
		}
	})

	t.Run("set auth persists token across loads", func(t *testing.T) {
		s := New(dir)
		user := &model.User{ID: 1, Email: "pat@example.com"}
		if err := s.SetAuth("tok-123", user); err != nil {
			t.Fatalf("SetAuth: %v", err)
		}

		s2 := New(dir)
		if err := s2.Load(); err != nil {
			t.Fatalf("Load: %v", err)
		}
		if s2.Token() != "tok-123" {
			t.Fatalf("expected token tok-123; got %q", s2.Token())
		}
		if !s2.Authenticated() {
			t.Fatalf("expected authenticated session after reload")
		}
		// The profile is in-memory only.
		if s2.User() != nil {
			t.Fatalf("expected no cached user after reload; got %+v", s2.User())
		}
	})

	t.Run("logout clears token durably", func(t *testing.T) {
		s := New(dir)
		if err := s.SetAuth("tok-456", nil); err != nil {
			t.Fatalf("SetAuth: %v", err)
		}
		if err := s.Logout(); err != nil {
			t.Fatalf("Logout: %v", err)
		}

		s2 := New(dir)
		if err := s2.Load(); err != nil {
			t.Fatalf("Load: %v", err)
		}
		if s2.Authenticated() {
			t.Fatalf("expected logged-out session after logout")
		}
	})

	t.Run("credentials file has owner-only permissions", func(t *testing.T) {
		s := New(dir)
		if err := s.SetAuth("tok-789", nil); err != nil {
			t.Fatalf("SetAuth: %v", err)
		}
		info, err := os.Stat(filepath.Join(dir, "credentials.json"))
		if err != nil {
			t.Fatalf("stat credentials: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("expected 0600; got %o", perm)
		}
	})
}

func TestUserRequiresToken(t *testing.T) {
	s := New(t.TempDir())
	if err := s.SetAuth("tok", &model.User{ID: 7, Email: "x@example.com"}); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	if s.User() == nil {
		t.Fatalf("expected cached user while authenticated")
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.User() != nil {
		t.Fatalf("expected nil user without a token")
	}
}

func TestPendingVerificationEmail(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	if err := s.SetPendingVerificationEmail("new@example.com"); err != nil {
		t.Fatalf("SetPendingVerificationEmail: %v", err)
	}

	s2 := New(dir)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s2.PendingVerificationEmail(); got != "new@example.com" {
		t.Fatalf("expected pending email to survive reload; got %q", got)
	}

	if err := s2.SetPendingVerificationEmail(""); err != nil {
		t.Fatalf("clear pending email: %v", err)
	}
	s3 := New(dir)
	if err := s3.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s3.PendingVerificationEmail(); got != "" {
		t.Fatalf("expected cleared pending email; got %q", got)
	}
}
