package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"careops-cli/internal/model"
)

// Session holds the authentication state for one running client. The bearer
// token is the only thing persisted across restarts; the user profile lives
// in memory and is re-fetched after login.
//
// Construct one per process (or per test) and pass it explicitly; there is
// no package-level session.
type Session struct {
	dir string

	token        string
	user         *model.User
	pendingEmail string
}

type credentialsFile struct {
	Token string `json:"token,omitempty"`

	// PendingVerificationEmail survives a restart mid phone-verification so
	// the verify/resend flow can resume without retyping the email.
	PendingVerificationEmail string `json:"pendingVerificationEmail,omitempty"`
}

func New(dir string) *Session {
	return &Session{dir: dir}
}

func (s *Session) credentialsPath() string {
	return filepath.Join(s.dir, "credentials.json")
}

// Load restores the persisted token. A missing file is a clean logged-out
// state, not an error.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.credentialsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	s.token = strings.TrimSpace(f.Token)
	s.pendingEmail = strings.TrimSpace(f.PendingVerificationEmail)
	return nil
}

func (s *Session) Token() string { return s.token }

// User returns the cached profile, or nil. A session without a token is
// unauthenticated regardless of any cached profile.
func (s *Session) User() *model.User {
	if s.token == "" {
		return nil
	}
	return s.user
}

func (s *Session) Authenticated() bool { return s.token != "" }

// SetAuth stores the token durably and the user in memory.
func (s *Session) SetAuth(token string, user *model.User) error {
	s.token = strings.TrimSpace(token)
	s.user = user
	return s.save()
}

// Logout removes the token from durable storage and clears in-memory state.
func (s *Session) Logout() error {
	s.token = ""
	s.user = nil
	s.pendingEmail = ""
	return s.save()
}

func (s *Session) PendingVerificationEmail() string { return s.pendingEmail }

func (s *Session) SetPendingVerificationEmail(email string) error {
	s.pendingEmail = strings.TrimSpace(email)
	return s.save()
}

func (s *Session) save() error {
	f := credentialsFile{
		Token:                    s.token,
		PendingVerificationEmail: s.pendingEmail,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.credentialsPath(), data, 0o600)
}
