package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careops-cli/internal/model"
)

// execute runs the root command the way main does, with output captured.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func cliBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Incorrect email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.Token{AccessToken: "tok-cli", TokenType: "bearer"})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "tok-cli" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Not authenticated"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.User{ID: 1, Email: "staff@example.com", FullName: "Staff"})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email       string `json:"email"`
			PhoneNumber string `json:"phone_number"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(model.User{ID: 2, Email: req.Email, PhoneNumber: req.PhoneNumber})
	})
	mux.HandleFunc("POST /auth/verify-sms", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "email required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status": "verified"}`))
	})
	mux.HandleFunc("GET /workspace/list", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Workspace{
			{ID: 3, Name: "Harbor Clinic", Timezone: "UTC", IsActive: true, CreatedAt: time.Now()},
		})
	})
	mux.HandleFunc("GET /dashboard/3", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.DashboardSnapshot{
			Stats: model.DashboardStats{TodayBookings: 2, TotalRevenue: 150},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, srv *httptest.Server) {
	t.Helper()
	t.Setenv("CAREOPS_CONFIG_DIR", t.TempDir())
	t.Setenv("CAREOPS_API_BASE_URL", srv.URL)
	t.Setenv("CAREOPS_API", "")
}

func TestLoginThenAuthenticatedCommands(t *testing.T) {
	srv := cliBackend(t)
	setupEnv(t, srv)

	out, err := execute(t, "login", "--email", "staff@example.com", "--password", "hunter22")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	var loginOut struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
		Hints []string `json:"_hints"`
	}
	if err := json.Unmarshal([]byte(out), &loginOut); err != nil {
		t.Fatalf("login output is not JSON: %v\n%s", err, out)
	}
	if !loginOut.Data.Authenticated {
		t.Fatalf("expected authenticated=true:\n%s", out)
	}
	if len(loginOut.Hints) == 0 {
		t.Fatalf("expected next-step hints:\n%s", out)
	}

	// The stored token carries into a separate invocation.
	out, err = execute(t, "workspaces", "list")
	if err != nil {
		t.Fatalf("workspaces list: %v\n%s", err, out)
	}
	var wsOut struct {
		Data []model.Workspace `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &wsOut); err != nil {
		t.Fatalf("workspaces output is not JSON: %v\n%s", err, out)
	}
	if len(wsOut.Data) != 1 || wsOut.Data[0].Name != "Harbor Clinic" {
		t.Fatalf("unexpected workspaces: %+v", wsOut.Data)
	}

	out, err = execute(t, "dashboard", "--workspace", "3")
	if err != nil {
		t.Fatalf("dashboard: %v\n%s", err, out)
	}
	var dashOut struct {
		Data model.DashboardSnapshot `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &dashOut); err != nil {
		t.Fatalf("dashboard output is not JSON: %v\n%s", err, out)
	}
	if dashOut.Data.Stats.TodayBookings != 2 {
		t.Fatalf("unexpected dashboard stats: %+v", dashOut.Data.Stats)
	}
}

func TestAuthenticatedCommandsRequireLogin(t *testing.T) {
	srv := cliBackend(t)
	setupEnv(t, srv)

	if _, err := execute(t, "whoami"); err == nil {
		t.Fatalf("expected error without a stored token")
	}
	if _, err := execute(t, "workspaces", "list"); err == nil {
		t.Fatalf("expected error without a stored token")
	}
}

func TestWorkspaceScopedCommandsRequireWorkspaceFlag(t *testing.T) {
	srv := cliBackend(t)
	setupEnv(t, srv)

	if out, err := execute(t, "login", "--email", "staff@example.com", "--password", "hunter22"); err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if _, err := execute(t, "dashboard"); err == nil {
		t.Fatalf("expected error without --workspace")
	}
}

func TestBadCredentialsSurfaceDetail(t *testing.T) {
	srv := cliBackend(t)
	setupEnv(t, srv)

	out, err := execute(t, "login", "--email", "staff@example.com", "--password", "wrong")
	if err == nil {
		t.Fatalf("expected login failure")
	}
	if !bytes.Contains([]byte(out), []byte("Incorrect email or password")) {
		t.Fatalf("expected backend detail in output:\n%s", out)
	}
}

func TestVerifyUsesPendingEmail(t *testing.T) {
	srv := cliBackend(t)
	setupEnv(t, srv)

	out, err := execute(t, "register",
		"--email", "new@example.com",
		"--password", "secret6",
		"--full-name", "New Person",
		"--phone", "+15551230000")
	if err != nil {
		t.Fatalf("register: %v\n%s", err, out)
	}

	// No --email needed: the pending registration remembers it.
	out, err = execute(t, "verify", "--code", "123456")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	var verifyOut struct {
		Data struct {
			Email    string `json:"email"`
			Verified bool   `json:"verified"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &verifyOut); err != nil {
		t.Fatalf("verify output is not JSON: %v\n%s", err, out)
	}
	if verifyOut.Data.Email != "new@example.com" || !verifyOut.Data.Verified {
		t.Fatalf("unexpected verify output: %+v", verifyOut.Data)
	}

	// A second verify has nothing pending.
	if _, err := execute(t, "verify", "--code", "123456"); err == nil {
		t.Fatalf("expected error once the pending email is cleared")
	}
}
