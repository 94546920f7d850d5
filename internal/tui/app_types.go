package tui

import (
	"careops-cli/internal/api"
	"careops-cli/internal/model"
	"careops-cli/internal/session"

	"go.uber.org/zap"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewWorkspaces
	viewSetup
	viewDashboard
	viewInbox
	viewBook
)

func levelFor(v view) session.AccessLevel {
	switch v {
	case viewWorkspaces:
		return session.AccessAuthenticated
	case viewSetup, viewDashboard, viewInbox:
		return session.AccessWorkspace
	default:
		return session.AccessPublic
	}
}

type registerStep int

const (
	stepRegister registerStep = iota
	stepVerify
)

type setupTab int

const (
	tabSetup setupTab = iota
	tabPreview
)

type bookStep int

const (
	bookStepContact bookStep = iota
	bookStepSelection
	bookStepConfirmed
)

// Deps are the injected collaborators for the TUI. Tests construct these
// against an httptest backend and a temp-dir session.
type Deps struct {
	Client    *api.Client
	Session   *session.Session
	Workspace *session.WorkspaceSelection
	Logger    *zap.Logger
}

// initMsg kicks off the home redirect after the program starts.
type initMsg struct{}

type loginResultMsg struct {
	token string
	user  *model.User
	err   error
}

type registerResultMsg struct {
	user      *model.User
	withPhone bool
	err       error
}

type verifyResultMsg struct{ err error }

type resendResultMsg struct{ err error }

type workspacesLoadedMsg struct {
	workspaces []model.Workspace
	err        error
}

type workspaceCreatedMsg struct {
	workspace *model.Workspace
	err       error
}

type workspaceActivatedMsg struct{ err error }

type setupLoadedMsg struct {
	bookingTypes []model.Booking
	contacts     []model.Contact
	err          error
}

type bookingTypeAddedMsg struct {
	booking *model.Booking
	err     error
}

type contactAddedMsg struct {
	contact *model.Contact
	err     error
}

type dashboardLoadedMsg struct {
	snapshot *model.DashboardSnapshot
	err      error
}

type conversationsLoadedMsg struct {
	conversations []model.Conversation
	err           error
}

type messageSentMsg struct{ err error }

type bookingPlacedMsg struct {
	confirmation bookingConfirmation
	err          error
}

// bookingConfirmation is the wizard's terminal display state. When the
// wizard could not reach the backend it is built from local input only.
type bookingConfirmation struct {
	Name        string
	Email       string
	BookingType string
	ScheduledAt string
	BookingID   int
	LocalOnly   bool
}
