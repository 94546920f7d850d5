package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) enterLogin() (appModel, tea.Cmd) {
	m.loginBusy = false
	m.loginErr = ""
	m.loginPassword.SetValue("")
	m.loginFocus = 0
	m.loginEmail.Focus()
	m.loginPassword.Blur()
	return m, textinput.Blink
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateLoginInputs(msg)
	}

	switch key.String() {
	case "ctrl+r":
		mm, cmd := m.navigate(viewRegister)
		return mm, cmd
	case "ctrl+b":
		mm, cmd := m.navigate(viewBook)
		return mm, cmd
	case "enter":
		if m.loginBusy {
			return m, nil
		}
		email := strings.TrimSpace(m.loginEmail.Value())
		password := m.loginPassword.Value()
		if email == "" || password == "" {
			m.loginErr = "email and password are required"
			return m, nil
		}
		m.loginBusy = true
		m.loginErr = ""
		return m, m.loginCmd(email, password)
	}

	if d := deltaFor(key.String()); d != 0 {
		m.loginFocus = cycle(m.loginFocus, d, 2)
		if m.loginFocus == 0 {
			m.loginEmail.Focus()
			m.loginPassword.Blur()
		} else {
			m.loginEmail.Blur()
			m.loginPassword.Focus()
		}
		return m, textinput.Blink
	}

	return m.updateLoginInputs(msg)
}

func (m appModel) updateLoginInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginEmail, cmd = m.loginEmail.Update(msg)
	} else {
		m.loginPassword, cmd = m.loginPassword.Update(msg)
	}
	return m, cmd
}

func (m appModel) onLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.loginBusy = false
	if msg.err != nil {
		m.logErr("login failed", msg.err)
		m.loginErr = msg.err.Error()
		return m, nil
	}
	if err := m.deps.Session.SetAuth(msg.token, msg.user); err != nil {
		m.logErr("persist credentials", err)
		m.loginErr = "could not save credentials: " + err.Error()
		return m, nil
	}
	return m.navigate(viewWorkspaces)
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Sign in") + "\n\n")
	b.WriteString("  " + m.loginEmail.View() + "\n")
	b.WriteString("  " + m.loginPassword.View() + "\n\n")
	switch {
	case m.loginBusy:
		b.WriteString("  " + styleMuted().Render("Signing in..."))
	case m.loginErr != "":
		b.WriteString("  " + styleError().Render(m.loginErr))
	default:
		b.WriteString("  " + styleMuted().Render("New here? ctrl+r to create an account."))
	}
	return b.String()
}
