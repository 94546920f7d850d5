package tui

import (
	"strings"

	"careops-cli/internal/api"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) enterRegister() (appModel, tea.Cmd) {
	m.regBusy = false
	m.regErr = ""
	m.regNotice = ""

	// Resume an interrupted phone verification across restarts.
	if pending := m.deps.Session.PendingVerificationEmail(); pending != "" {
		m.regStep = stepVerify
		m.regEmail = pending
		m.codeInput.SetValue("")
		m.codeInput.Focus()
		return m, textinput.Blink
	}

	m.regStep = stepRegister
	m.regFocus = 0
	for i := range m.regInputs {
		m.regInputs[i].Blur()
	}
	m.regInputs[0].Focus()
	return m, textinput.Blink
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateRegisterInputs(msg)
	}

	if key.String() == "esc" {
		// Leaving mid-verification keeps the pending email so the flow can
		// resume on the next visit.
		mm, cmd := m.navigate(viewLogin)
		return mm, cmd
	}

	if m.regStep == stepVerify {
		switch key.String() {
		case "enter":
			if m.regBusy {
				return m, nil
			}
			code := strings.TrimSpace(m.codeInput.Value())
			if len(code) != 6 {
				m.regErr = "enter the 6-digit code"
				return m, nil
			}
			m.regBusy = true
			m.regErr = ""
			return m, m.verifyCmd(m.regEmail, code)
		case "ctrl+r":
			if m.regBusy {
				return m, nil
			}
			m.regBusy = true
			m.regErr = ""
			return m, m.resendCmd(m.regEmail)
		}
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "enter":
		if m.regBusy {
			return m, nil
		}
		name := strings.TrimSpace(m.regInputs[0].Value())
		email := strings.TrimSpace(m.regInputs[1].Value())
		password := m.regInputs[2].Value()
		phone := strings.TrimSpace(m.regInputs[3].Value())
		switch {
		case name == "" || email == "" || password == "":
			m.regErr = "name, email and password are required"
			return m, nil
		case len(password) < 6:
			m.regErr = "password must be at least 6 characters"
			return m, nil
		}
		m.regBusy = true
		m.regErr = ""
		m.regEmail = email
		m.regPhone = phone
		return m, m.registerCmd(api.RegisterRequest{
			Email:       email,
			Password:    password,
			FullName:    name,
			PhoneNumber: phone,
		})
	}

	if d := deltaFor(key.String()); d != 0 {
		m.regInputs[m.regFocus].Blur()
		m.regFocus = cycle(m.regFocus, d, len(m.regInputs))
		m.regInputs[m.regFocus].Focus()
		return m, textinput.Blink
	}

	return m.updateRegisterInputs(msg)
}

func (m appModel) updateRegisterInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.regStep == stepVerify {
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd
	}
	m.regInputs[m.regFocus], cmd = m.regInputs[m.regFocus].Update(msg)
	return m, cmd
}

func (m appModel) onRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	m.regBusy = false
	if msg.err != nil {
		m.logErr("register failed", msg.err)
		m.regErr = msg.err.Error()
		return m, nil
	}
	if !msg.withPhone {
		// No phone means no SMS step; the account is ready to sign in.
		mm, cmd := m.navigate(viewLogin)
		mm.loginErr = ""
		mm.loginEmail.SetValue(m.regEmail)
		return mm, cmd
	}
	if err := m.deps.Session.SetPendingVerificationEmail(m.regEmail); err != nil {
		m.logErr("persist pending verification", err)
	}
	m.regStep = stepVerify
	m.regNotice = "We sent a 6-digit code to " + m.regPhone
	m.codeInput.SetValue("")
	m.codeInput.Focus()
	return m, textinput.Blink
}

func (m appModel) onVerifyResult(msg verifyResultMsg) (tea.Model, tea.Cmd) {
	m.regBusy = false
	if msg.err != nil {
		m.logErr("verify failed", msg.err)
		m.regErr = msg.err.Error()
		return m, nil
	}
	if err := m.deps.Session.SetPendingVerificationEmail(""); err != nil {
		m.logErr("clear pending verification", err)
	}
	mm, cmd := m.navigate(viewLogin)
	mm.loginEmail.SetValue(m.regEmail)
	return mm, cmd
}

func (m appModel) onResendResult(msg resendResultMsg) (tea.Model, tea.Cmd) {
	m.regBusy = false
	if msg.err != nil {
		m.regErr = msg.err.Error()
		return m, nil
	}
	m.regNotice = "A new code is on its way"
	m.regErr = ""
	return m, nil
}

func (m appModel) viewRegister() string {
	var b strings.Builder
	if m.regStep == stepVerify {
		b.WriteString(styleTitle().Render("Verify your phone") + "\n\n")
		if m.regNotice != "" {
			b.WriteString("  " + styleOK().Render(m.regNotice) + "\n\n")
		}
		b.WriteString("  Code for " + m.regEmail + ":\n")
		b.WriteString("  " + m.codeInput.View() + "\n\n")
		switch {
		case m.regBusy:
			b.WriteString("  " + styleMuted().Render("Checking..."))
		case m.regErr != "":
			b.WriteString("  " + styleError().Render(m.regErr))
		default:
			b.WriteString("  " + styleMuted().Render("ctrl+r resends the code"))
		}
		return b.String()
	}

	b.WriteString(styleTitle().Render("Create your account") + "\n\n")
	labels := []string{"Name", "Email", "Password", "Phone"}
	for i, in := range m.regInputs {
		b.WriteString("  " + labels[i] + "\n  " + in.View() + "\n")
	}
	b.WriteString("\n")
	switch {
	case m.regBusy:
		b.WriteString("  " + styleMuted().Render("Creating account..."))
	case m.regErr != "":
		b.WriteString("  " + styleError().Render(m.regErr))
	default:
		b.WriteString("  " + styleMuted().Render("Adding a phone enables SMS verification."))
	}
	return b.String()
}
