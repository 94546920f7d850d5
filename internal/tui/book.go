package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// bookTypeChoices prefers the selected workspace's real booking types and
// falls back to a stock list for the anonymous flow.
func (m appModel) bookTypeChoices() []string {
	if len(m.bookingTypes) > 0 {
		seen := map[string]bool{}
		var out []string
		for _, bt := range m.bookingTypes {
			if !seen[bt.BookingType] {
				seen[bt.BookingType] = true
				out = append(out, bt.BookingType)
			}
		}
		return out
	}
	return defaultBookingTypes
}

func (m appModel) enterBook() (appModel, tea.Cmd) {
	m.bookStep = bookStepContact
	m.bookBusy = false
	m.bookErr = ""
	m.bookFocus = 0
	m.bookTypeIdx = 0
	m.bookSelFocus = 0
	m.confirmation = nil
	for i := range m.bookInputs {
		m.bookInputs[i].SetValue("")
		m.bookInputs[i].Blur()
	}
	m.bookInputs[0].Focus()
	m.bookDate.SetValue(time.Now().AddDate(0, 0, 1).Format("2006-01-02"))
	m.bookTime.SetValue("09:00")
	return m, textinput.Blink
}

func (m appModel) updateBook(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateBookInputs(msg)
	}

	if key.String() == "esc" {
		switch m.bookStep {
		case bookStepSelection:
			m.bookStep = bookStepContact
			m.bookErr = ""
			return m, nil
		default:
			mm, cmd := m.navigate(viewLogin)
			return mm, cmd
		}
	}

	switch m.bookStep {
	case bookStepContact:
		return m.updateBookContact(key, msg)
	case bookStepSelection:
		return m.updateBookSelection(key, msg)
	case bookStepConfirmed:
		if key.String() == "enter" || key.String() == "b" {
			mm, cmd := m.enterBook()
			return mm, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateBookContact(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		name := strings.TrimSpace(m.bookInputs[0].Value())
		email := strings.TrimSpace(m.bookInputs[1].Value())
		if name == "" || email == "" {
			m.bookErr = "name and email are required"
			return m, nil
		}
		m.bookStep = bookStepSelection
		m.bookErr = ""
		m.bookSelFocus = 0
		m.bookDate.Blur()
		m.bookTime.Blur()
		return m, nil
	}

	if d := deltaFor(key.String()); d != 0 {
		m.bookInputs[m.bookFocus].Blur()
		m.bookFocus = cycle(m.bookFocus, d, len(m.bookInputs))
		m.bookInputs[m.bookFocus].Focus()
		return m, textinput.Blink
	}
	return m.updateBookInputs(msg)
}

func (m appModel) updateBookSelection(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if m.bookBusy {
			return m, nil
		}
		when, err := time.Parse("2006-01-02 15:04",
			strings.TrimSpace(m.bookDate.Value())+" "+strings.TrimSpace(m.bookTime.Value()))
		if err != nil {
			m.bookErr = "date must be YYYY-MM-DD and time HH:MM"
			return m, nil
		}
		types := m.bookTypeChoices()
		m.bookBusy = true
		m.bookErr = ""
		return m, m.placeBookingCmd(
			strings.TrimSpace(m.bookInputs[0].Value()),
			strings.TrimSpace(m.bookInputs[1].Value()),
			strings.TrimSpace(m.bookInputs[2].Value()),
			types[m.bookTypeIdx],
			when,
		)
	case "left", "right":
		if m.bookSelFocus == 0 {
			d := 1
			if key.String() == "left" {
				d = -1
			}
			m.bookTypeIdx = cycle(m.bookTypeIdx, d, len(m.bookTypeChoices()))
			return m, nil
		}
	}

	if d := deltaFor(key.String()); d != 0 {
		m.bookDate.Blur()
		m.bookTime.Blur()
		m.bookSelFocus = cycle(m.bookSelFocus, d, 3)
		switch m.bookSelFocus {
		case 1:
			m.bookDate.Focus()
		case 2:
			m.bookTime.Focus()
		}
		return m, textinput.Blink
	}
	return m.updateBookInputs(msg)
}

func (m appModel) updateBookInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.bookStep {
	case bookStepContact:
		m.bookInputs[m.bookFocus], cmd = m.bookInputs[m.bookFocus].Update(msg)
	case bookStepSelection:
		switch m.bookSelFocus {
		case 1:
			m.bookDate, cmd = m.bookDate.Update(msg)
		case 2:
			m.bookTime, cmd = m.bookTime.Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) onBookingPlaced(msg bookingPlacedMsg) (tea.Model, tea.Cmd) {
	m.bookBusy = false
	if msg.err != nil {
		m.logErr("place booking", msg.err)
		m.bookErr = msg.err.Error()
		return m, nil
	}
	conf := msg.confirmation
	m.confirmation = &conf
	m.bookStep = bookStepConfirmed
	return m, nil
}

func (m appModel) viewBook() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Book an appointment") + "\n\n")

	switch m.bookStep {
	case bookStepContact:
		b.WriteString("  " + styleMuted().Render("Step 1 of 2: your details") + "\n\n")
		for _, in := range m.bookInputs {
			b.WriteString("  " + in.View() + "\n")
		}
		b.WriteString("\n")
		if m.bookErr != "" {
			b.WriteString("  " + styleError().Render(m.bookErr))
		} else {
			b.WriteString("  " + styleMuted().Render("enter continues to time selection"))
		}

	case bookStepSelection:
		b.WriteString("  " + styleMuted().Render("Step 2 of 2: pick a service and time") + "\n\n  ")
		for i, t := range m.bookTypeChoices() {
			b.WriteString(styleButton(i == m.bookTypeIdx && m.bookSelFocus == 0).Render(t))
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
		b.WriteString("  Date " + m.bookDate.View() + "\n")
		b.WriteString("  Time " + m.bookTime.View() + "\n\n")
		switch {
		case m.bookBusy:
			b.WriteString("  " + styleMuted().Render("Placing booking..."))
		case m.bookErr != "":
			b.WriteString("  " + styleError().Render(m.bookErr))
		default:
			b.WriteString("  " + styleMuted().Render("enter confirms the booking"))
		}

	case bookStepConfirmed:
		c := m.confirmation
		b.WriteString("  " + styleOK().Render("Booking confirmed!") + "\n\n")
		b.WriteString(fmt.Sprintf("  %s for %s (%s)\n", c.BookingType, c.Name, c.Email))
		b.WriteString("  " + c.ScheduledAt + "\n")
		if c.LocalOnly {
			b.WriteString("\n  " + styleWarn().Render("Saved locally; sign in to sync with a workspace.") + "\n")
		} else {
			b.WriteString(fmt.Sprintf("\n  Reference #%d\n", c.BookingID))
		}
		b.WriteString("\n  " + styleMuted().Render("enter books another, esc returns to sign in"))
	}
	return b.String()
}
