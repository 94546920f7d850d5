package tui

import (
	"context"
	"time"

	"careops-cli/internal/api"
	"careops-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Every network call runs as a tea.Cmd and settles into exactly one typed
// result message. The triggering control stays disabled (its busy flag)
// until the result lands.

func (m appModel) loginCmd(email, password string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		tok, err := client.Login(context.Background(), email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		// Profile fetch is best-effort; a failed lookup still logs in.
		user, err := client.Me(context.Background(), tok.AccessToken)
		if err != nil {
			user = nil
		}
		return loginResultMsg{token: tok.AccessToken, user: user}
	}
}

func (m appModel) registerCmd(req api.RegisterRequest) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		user, err := client.Register(context.Background(), req)
		return registerResultMsg{user: user, withPhone: req.PhoneNumber != "", err: err}
	}
}

func (m appModel) verifyCmd(email, code string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		return verifyResultMsg{err: client.VerifySMS(context.Background(), email, code)}
	}
}

func (m appModel) resendCmd(email string) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		return resendResultMsg{err: client.ResendSMS(context.Background(), email)}
	}
}

func (m appModel) loadWorkspacesCmd() tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		workspaces, err := client.ListWorkspaces(context.Background(), token)
		return workspacesLoadedMsg{workspaces: workspaces, err: err}
	}
}

func (m appModel) createWorkspaceCmd(req api.WorkspaceCreateRequest) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		ws, err := client.CreateWorkspace(context.Background(), token, req)
		return workspaceCreatedMsg{workspace: ws, err: err}
	}
}

func (m appModel) activateWorkspaceCmd(workspaceID int) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		return workspaceActivatedMsg{err: client.ActivateWorkspace(context.Background(), token, workspaceID)}
	}
}

func (m appModel) loadSetupCmd(workspaceID int) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		contacts, err := client.ListContacts(context.Background(), token, workspaceID)
		if err != nil {
			return setupLoadedMsg{err: err}
		}
		bookings, err := client.ListBookings(context.Background(), token, workspaceID)
		if err != nil {
			return setupLoadedMsg{err: err}
		}
		return setupLoadedMsg{bookingTypes: bookings, contacts: contacts}
	}
}

// The backend has no standalone booking-type resource; a booking type is a
// booking against a demo contact created on the fly.
func (m appModel) addBookingTypeCmd(workspaceID int, bookingType string, durationMinutes int) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		contact, err := client.CreateContact(context.Background(), token, workspaceID, api.ContactCreateRequest{
			Name:  "Booking Type Demo",
			Email: "demo@example.com",
		})
		if err != nil {
			return bookingTypeAddedMsg{err: err}
		}
		booking, err := client.CreateBooking(context.Background(), token, workspaceID, contact.ID, api.BookingCreateRequest{
			BookingType:     bookingType,
			ScheduledAt:     time.Now().UTC(),
			DurationMinutes: durationMinutes,
		})
		return bookingTypeAddedMsg{booking: booking, err: err}
	}
}

func (m appModel) addContactCmd(workspaceID int, req api.ContactCreateRequest) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		contact, err := client.CreateContact(context.Background(), token, workspaceID, req)
		return contactAddedMsg{contact: contact, err: err}
	}
}

func (m appModel) loadDashboardCmd(workspaceID int) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		snap, err := client.Dashboard(context.Background(), token, workspaceID)
		return dashboardLoadedMsg{snapshot: snap, err: err}
	}
}

func (m appModel) loadConversationsCmd(workspaceID int) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		conversations, err := client.ListConversations(context.Background(), token, workspaceID)
		return conversationsLoadedMsg{conversations: conversations, err: err}
	}
}

func (m appModel) sendMessageCmd(workspaceID, conversationID int, content string) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	return func() tea.Msg {
		_, err := client.SendMessage(context.Background(), token, workspaceID, conversationID, api.MessageSendRequest{
			Content:    content,
			SenderType: "staff",
			Channel:    "system",
		})
		return messageSentMsg{err: err}
	}
}

// placeBookingCmd wires the public wizard to the backend when a token and a
// workspace are available; otherwise the confirmation stays local.
func (m appModel) placeBookingCmd(name, email, phone, bookingType string, when time.Time) tea.Cmd {
	client, token := m.deps.Client, m.deps.Session.Token()
	var workspace *model.Workspace
	if m.deps.Workspace != nil {
		workspace = m.deps.Workspace.Current()
	}
	conf := bookingConfirmation{
		Name:        name,
		Email:       email,
		BookingType: bookingType,
		ScheduledAt: when.Format("Mon, 02 Jan 2006 15:04"),
	}
	return func() tea.Msg {
		if token == "" || workspace == nil {
			conf.LocalOnly = true
			return bookingPlacedMsg{confirmation: conf}
		}
		contact, err := client.CreateContact(context.Background(), token, workspace.ID, api.ContactCreateRequest{
			Name:  name,
			Email: email,
			Phone: phone,
		})
		if err != nil {
			return bookingPlacedMsg{err: err}
		}
		booking, err := client.CreateBooking(context.Background(), token, workspace.ID, contact.ID, api.BookingCreateRequest{
			BookingType:     bookingType,
			ScheduledAt:     when,
			DurationMinutes: 60,
		})
		if err != nil {
			return bookingPlacedMsg{err: err}
		}
		conf.BookingID = booking.ID
		return bookingPlacedMsg{confirmation: conf}
	}
}
