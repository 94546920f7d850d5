package tui

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"careops-cli/internal/model"

	"github.com/charmbracelet/x/ansi"
)

func TestBookWizardLocalOnly(t *testing.T) {
	// No token, no workspace: the wizard confirms locally without touching
	// the network.
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	m := start(t, deps)
	m = press(t, m, "ctrl+b")
	if m.view != viewBook {
		t.Fatalf("expected booking wizard; got %v", m.view)
	}

	t.Run("contact step gates on name and email", func(t *testing.T) {
		mm := press(t, m, "enter")
		if mm.bookStep != bookStepContact {
			t.Fatalf("expected to stay on the contact step")
		}
		if mm.bookErr == "" {
			t.Fatalf("expected validation error")
		}
	})

	m.bookInputs[0].SetValue("Alex Rivera")
	m.bookInputs[1].SetValue("alex@example.com")
	m = press(t, m, "enter")
	if m.bookStep != bookStepSelection {
		t.Fatalf("expected selection step; got %v", m.bookStep)
	}

	// The date defaults to tomorrow, the time to 09:00.
	wantDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if got := m.bookDate.Value(); got != wantDate {
		t.Fatalf("expected default date %q; got %q", wantDate, got)
	}

	m = press(t, m, "right") // second booking type
	m = press(t, m, "enter")

	if m.bookStep != bookStepConfirmed {
		t.Fatalf("expected confirmation; got step %v err %q", m.bookStep, m.bookErr)
	}
	if m.confirmation == nil || !m.confirmation.LocalOnly {
		t.Fatalf("expected a local-only confirmation; got %+v", m.confirmation)
	}
	if m.confirmation.BookingType != defaultBookingTypes[1] {
		t.Fatalf("expected second stock type; got %q", m.confirmation.BookingType)
	}

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Booking confirmed!") {
		t.Fatalf("expected confirmation view:\n%s", out)
	}
	if !strings.Contains(out, "sign in to sync") {
		t.Fatalf("expected local-only notice:\n%s", out)
	}

	t.Run("enter resets for another booking", func(t *testing.T) {
		mm := press(t, m, "enter")
		if mm.bookStep != bookStepContact {
			t.Fatalf("expected a fresh wizard; got %v", mm.bookStep)
		}
		if mm.bookInputs[0].Value() != "" {
			t.Fatalf("expected cleared inputs; got %q", mm.bookInputs[0].Value())
		}
		if mm.confirmation != nil {
			t.Fatalf("expected cleared confirmation")
		}
	})
}

func TestBookWizardRejectsBadTime(t *testing.T) {
	deps := testDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	m := start(t, deps)
	m = press(t, m, "ctrl+b")

	m.bookInputs[0].SetValue("Alex")
	m.bookInputs[1].SetValue("alex@example.com")
	m = press(t, m, "enter")

	m.bookTime.SetValue("25:99")
	m = press(t, m, "enter")

	if m.bookStep != bookStepSelection {
		t.Fatalf("expected to stay on selection; got %v", m.bookStep)
	}
	if m.bookErr == "" {
		t.Fatalf("expected time format error")
	}
}

func TestBookWizardSyncsWhenAuthenticated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts/1/create", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(model.Contact{ID: 21, Name: req.Name})
	})
	mux.HandleFunc("POST /bookings/1/21/create", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BookingType string `json:"booking_type"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(model.Booking{ID: 55, BookingType: req.BookingType, Status: model.BookingConfirmed})
	})

	deps := testDeps(t, mux)
	if err := deps.Session.SetAuth("tok-book", nil); err != nil {
		t.Fatalf("SetAuth: %v", err)
	}
	deps.Workspace.Set(model.Workspace{ID: 1, Name: "Clinic", IsActive: true})

	m := newAppModel(deps)
	mm, cmd := m.navigate(viewBook)
	m = drain(t, mm, cmd)

	m.bookInputs[0].SetValue("Alex Rivera")
	m.bookInputs[1].SetValue("alex@example.com")
	m = press(t, m, "enter")
	m = press(t, m, "enter")

	if m.bookStep != bookStepConfirmed {
		t.Fatalf("expected confirmation; got step %v err %q", m.bookStep, m.bookErr)
	}
	if m.confirmation.LocalOnly {
		t.Fatalf("expected a synced booking, not local-only")
	}
	if m.confirmation.BookingID != 55 {
		t.Fatalf("expected backend booking id; got %d", m.confirmation.BookingID)
	}
}
