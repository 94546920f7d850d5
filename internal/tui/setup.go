package tui

import (
	"fmt"
	"strconv"
	"strings"

	"careops-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Setup tab focus order: booking type, duration, contact name, contact
// email, contact phone, activate button.
const setupFieldCount = 6

func (m appModel) enterSetup() (appModel, tea.Cmd) {
	m.setupTab = tabSetup
	m.setupBusy = false
	m.activateBusy = false
	m.setupErr = ""
	m.setupFocus = 0
	m.btType.SetValue("")
	m.btDuration.SetValue("")
	for i := range m.ctInputs {
		m.ctInputs[i].SetValue("")
		m.ctInputs[i].Blur()
	}
	m.btDuration.Blur()
	m.btType.Focus()
	return m, tea.Batch(textinput.Blink, m.loadSetupCmd(m.currentWorkspaceID()))
}

func (m appModel) setupInput(i int) *textinput.Model {
	switch i {
	case 0:
		return &m.btType
	case 1:
		return &m.btDuration
	case 2, 3, 4:
		return &m.ctInputs[i-2]
	}
	return nil
}

func (m appModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateSetupInputs(msg)
	}

	switch key.String() {
	case "esc":
		mm, cmd := m.navigate(viewWorkspaces)
		return mm, cmd
	case "ctrl+t":
		if m.setupTab == tabSetup {
			m.setupTab = tabPreview
		} else {
			m.setupTab = tabSetup
		}
		return m, nil
	}

	if m.setupTab == tabPreview {
		return m, nil
	}

	switch key.String() {
	case "enter":
		if m.setupBusy || m.activateBusy {
			return m, nil
		}
		switch {
		case m.setupFocus <= 1:
			bookingType := strings.TrimSpace(m.btType.Value())
			if bookingType == "" {
				m.setupErr = "booking type name is required"
				return m, nil
			}
			duration := 60
			if v := strings.TrimSpace(m.btDuration.Value()); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil || n <= 0 {
					m.setupErr = "duration must be a positive number of minutes"
					return m, nil
				}
				duration = n
			}
			m.setupBusy = true
			m.setupErr = ""
			return m, m.addBookingTypeCmd(m.currentWorkspaceID(), bookingType, duration)
		case m.setupFocus <= 4:
			name := strings.TrimSpace(m.ctInputs[0].Value())
			if name == "" {
				m.setupErr = "contact name is required"
				return m, nil
			}
			m.setupBusy = true
			m.setupErr = ""
			return m, m.addContactCmd(m.currentWorkspaceID(), api.ContactCreateRequest{
				Name:  name,
				Email: strings.TrimSpace(m.ctInputs[1].Value()),
				Phone: strings.TrimSpace(m.ctInputs[2].Value()),
			})
		default:
			// Activation requires at least one booking type so the public
			// page has something to offer.
			if len(m.bookingTypes) == 0 {
				m.setupErr = "add at least one booking type before going live"
				return m, nil
			}
			m.activateBusy = true
			m.setupErr = ""
			return m, m.activateWorkspaceCmd(m.currentWorkspaceID())
		}
	}

	if d := deltaFor(key.String()); d != 0 {
		if in := m.setupInput(m.setupFocus); in != nil {
			in.Blur()
		}
		m.setupFocus = cycle(m.setupFocus, d, setupFieldCount)
		if in := m.setupInput(m.setupFocus); in != nil {
			in.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	return m.updateSetupInputs(msg)
}

func (m appModel) updateSetupInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.setupInput(m.setupFocus)
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m appModel) onSetupLoaded(msg setupLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logErr("load setup", msg.err)
		m.setupErr = msg.err.Error()
		return m, nil
	}
	m.bookingTypes = msg.bookingTypes
	m.contacts = msg.contacts
	return m, nil
}

func (m appModel) onBookingTypeAdded(msg bookingTypeAddedMsg) (tea.Model, tea.Cmd) {
	m.setupBusy = false
	if msg.err != nil {
		m.logErr("add booking type", msg.err)
		m.setupErr = msg.err.Error()
		return m, nil
	}
	m.bookingTypes = append(m.bookingTypes, *msg.booking)
	m.btType.SetValue("")
	m.btDuration.SetValue("")
	return m, nil
}

func (m appModel) onContactAdded(msg contactAddedMsg) (tea.Model, tea.Cmd) {
	m.setupBusy = false
	if msg.err != nil {
		m.logErr("add contact", msg.err)
		m.setupErr = msg.err.Error()
		return m, nil
	}
	m.contacts = append(m.contacts, *msg.contact)
	for i := range m.ctInputs {
		m.ctInputs[i].SetValue("")
	}
	return m, nil
}

func (m appModel) onWorkspaceActivated(msg workspaceActivatedMsg) (tea.Model, tea.Cmd) {
	m.activateBusy = false
	if msg.err != nil {
		m.logErr("activate workspace", msg.err)
		m.setupErr = msg.err.Error()
		return m, nil
	}
	if ws := m.deps.Workspace.Current(); ws != nil {
		updated := *ws
		updated.IsActive = true
		m.deps.Workspace.Set(updated)
	}
	mm, cmd := m.navigate(viewDashboard)
	return mm, cmd
}

func (m appModel) viewSetup() string {
	var b strings.Builder
	name := "workspace"
	if ws := m.deps.Workspace.Current(); ws != nil {
		name = ws.Name
	}
	b.WriteString(styleTitle().Render("Set up "+name) + "\n\n")

	b.WriteString("  ")
	b.WriteString(styleButton(m.setupTab == tabSetup).Render("Setup"))
	b.WriteString(" ")
	b.WriteString(styleButton(m.setupTab == tabPreview).Render("Preview"))
	b.WriteString("\n\n")

	if m.setupTab == tabPreview {
		b.WriteString(m.viewSetupPreview())
		return b.String()
	}

	b.WriteString("  " + styleTitle().Render("Booking types") + "\n")
	if len(m.bookingTypes) == 0 {
		b.WriteString("  " + styleMuted().Render("(none yet)") + "\n")
	}
	for _, bt := range m.bookingTypes {
		b.WriteString(fmt.Sprintf("  - %s (%d min)\n", bt.BookingType, bt.DurationMinutes))
	}
	b.WriteString("  " + m.btType.View() + "  " + m.btDuration.View() + " min\n\n")

	b.WriteString("  " + styleTitle().Render("Contacts") + fmt.Sprintf("  (%d)\n", len(m.contacts)))
	for _, in := range m.ctInputs {
		b.WriteString("  " + in.View() + "\n")
	}
	b.WriteString("\n  ")
	b.WriteString(styleButton(m.setupFocus == setupFieldCount-1).Render("Go Live"))
	b.WriteString("\n\n")

	switch {
	case m.setupBusy:
		b.WriteString("  " + styleMuted().Render("Saving..."))
	case m.activateBusy:
		b.WriteString("  " + styleMuted().Render("Activating workspace..."))
	case m.setupErr != "":
		b.WriteString("  " + styleError().Render(m.setupErr))
	}
	return b.String()
}

func (m appModel) viewSetupPreview() string {
	var b strings.Builder
	b.WriteString("  " + styleMuted().Render("This is what visitors will see on the booking page:") + "\n\n")
	if len(m.bookingTypes) == 0 {
		b.WriteString("  " + styleError().Render("No booking types to offer yet."))
		return b.String()
	}
	for _, bt := range m.bookingTypes {
		b.WriteString("  " + styleOK().Render("[Book]") + fmt.Sprintf(" %s, %d minutes\n", bt.BookingType, bt.DurationMinutes))
	}
	return b.String()
}
