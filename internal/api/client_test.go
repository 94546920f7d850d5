package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careops-cli/internal/model"
)

func TestClientAuthTransport(t *testing.T) {
	var gotPath, gotHeader, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("token")
		_ = json.NewEncoder(w).Encode(model.User{ID: 1, Email: "pat@example.com"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	user, err := c.Me(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.Email != "pat@example.com" {
		t.Fatalf("expected decoded user; got %+v", user)
	}
	if gotPath != "/auth/me" {
		t.Fatalf("expected /auth/me; got %q", gotPath)
	}
	// The backend reads the query param; the header rides along for proxies.
	if gotHeader != "Bearer tok-abc" {
		t.Fatalf("expected bearer header; got %q", gotHeader)
	}
	if gotQuery != "tok-abc" {
		t.Fatalf("expected token query param; got %q", gotQuery)
	}
}

func TestClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "pat@example.com" || body["password"] != "hunter22" {
			t.Errorf("unexpected credentials %v", body)
		}
		_ = json.NewEncoder(w).Encode(model.Token{AccessToken: "tok-1", TokenType: "bearer"})
	}))
	defer srv.Close()

	tok, err := NewClient(srv.URL).Login(context.Background(), "pat@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.AccessToken != "tok-1" {
		t.Fatalf("expected tok-1; got %q", tok.AccessToken)
	}
}

func TestClientErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Login(context.Background(), "x@example.com", "nope")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 classification; got %v", err)
	}
	if got := err.Error(); got != "api: 401 Incorrect email or password" {
		t.Fatalf("expected backend detail; got %q", got)
	}
}

func TestClientErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream blew up"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListWorkspaces(context.Background(), "tok")
	if !IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("expected 502 classification; got %v", err)
	}
	// Non-JSON bodies fall back to the standard status text.
	if got := err.Error(); got != "api: 502 Bad Gateway" {
		t.Fatalf("expected status text fallback; got %q", got)
	}
}

func TestClientVerifySMS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/verify-sms" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "pat@example.com" {
			t.Errorf("expected email query param; got %q", got)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["code"] != "123456" {
			t.Errorf("expected code in body; got %v", body)
		}
		_, _ = w.Write([]byte(`{"status": "verified"}`))
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).VerifySMS(context.Background(), "pat@example.com", "123456"); err != nil {
		t.Fatalf("VerifySMS: %v", err)
	}
}

func TestClientWorkspaceRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /workspace/create":
			var req WorkspaceCreateRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(model.Workspace{ID: 5, Name: req.Name, Timezone: req.Timezone})
		case "GET /workspace/list":
			_ = json.NewEncoder(w).Encode([]model.Workspace{{ID: 5, Name: "Clinic"}})
		case "POST /workspace/5/activate":
			_, _ = w.Write([]byte(`{"status": "activated"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	ws, err := c.CreateWorkspace(ctx, "tok", WorkspaceCreateRequest{Name: "Clinic", Timezone: "UTC"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if ws.ID != 5 || ws.Name != "Clinic" {
		t.Fatalf("expected created workspace echoed back; got %+v", ws)
	}

	all, err := c.ListWorkspaces(ctx, "tok")
	if err != nil {
		t.Fatalf("ListWorkspaces: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one workspace; got %d", len(all))
	}

	if err := c.ActivateWorkspace(ctx, "tok", 5); err != nil {
		t.Fatalf("ActivateWorkspace: %v", err)
	}
}

func TestClientBookingCreatePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req BookingCreateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(model.Booking{
			ID:              11,
			BookingType:     req.BookingType,
			DurationMinutes: req.DurationMinutes,
			Status:          model.BookingConfirmed,
		})
	}))
	defer srv.Close()

	b, err := NewClient(srv.URL).CreateBooking(context.Background(), "tok", 3, 9, BookingCreateRequest{
		BookingType:     "Consultation",
		ScheduledAt:     time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if gotPath != "/bookings/3/9/create" {
		t.Fatalf("expected workspace and contact in path; got %q", gotPath)
	}
	if b.Status != model.BookingConfirmed {
		t.Fatalf("expected confirmed status; got %q", b.Status)
	}
}

func TestClientSendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inbox/2/conversations/7/send" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req MessageSendRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.SenderType != "staff" {
			t.Errorf("expected staff sender; got %q", req.SenderType)
		}
		_ = json.NewEncoder(w).Encode(SendReceipt{Status: "sent", MessageID: 42})
	}))
	defer srv.Close()

	receipt, err := NewClient(srv.URL).SendMessage(context.Background(), "tok", 2, 7, MessageSendRequest{
		Content:    "hello",
		SenderType: "staff",
		Channel:    "system",
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if receipt.MessageID != 42 {
		t.Fatalf("expected message id 42; got %d", receipt.MessageID)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:8000/api/")
	if c.BaseURL != "http://localhost:8000/api" {
		t.Fatalf("expected trimmed base url; got %q", c.BaseURL)
	}
}
