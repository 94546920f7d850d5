package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) enterInbox() (appModel, tea.Cmd) {
	m.inboxLoading = true
	m.inboxBusy = false
	m.inboxComposing = false
	m.convIdx = 0
	m.msgInput.SetValue("")
	m.msgInput.Blur()
	return m, m.loadConversationsCmd(m.currentWorkspaceID())
}

func (m appModel) updateInbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInboxInput(msg)
	}

	switch key.String() {
	case "esc":
		mm, cmd := m.navigate(viewDashboard)
		return mm, cmd
	case "tab":
		m.inboxComposing = !m.inboxComposing
		if m.inboxComposing {
			m.msgInput.Focus()
			return m, textinput.Blink
		}
		m.msgInput.Blur()
		return m, nil
	}

	if m.inboxComposing {
		if key.String() == "enter" {
			if m.inboxBusy || len(m.conversations) == 0 {
				return m, nil
			}
			// Whitespace-only messages never reach the wire.
			content := strings.TrimSpace(m.msgInput.Value())
			if content == "" {
				return m, nil
			}
			m.inboxBusy = true
			conv := m.conversations[m.convIdx]
			return m, m.sendMessageCmd(m.currentWorkspaceID(), conv.ID, content)
		}
		return m.updateInboxInput(msg)
	}

	switch key.String() {
	case "up", "k", "ctrl+p":
		if m.convIdx > 0 {
			m.convIdx--
		}
	case "down", "j", "ctrl+n":
		if m.convIdx < len(m.conversations)-1 {
			m.convIdx++
		}
	case "r":
		if !m.inboxLoading {
			m.inboxLoading = true
			return m, m.loadConversationsCmd(m.currentWorkspaceID())
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateInboxInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.msgInput, cmd = m.msgInput.Update(msg)
	return m, cmd
}

func (m appModel) onConversationsLoaded(msg conversationsLoadedMsg) (tea.Model, tea.Cmd) {
	m.inboxLoading = false
	if msg.err != nil {
		m.logErr("load conversations", msg.err)
		return m, nil
	}
	m.conversations = msg.conversations
	if m.convIdx >= len(m.conversations) {
		m.convIdx = 0
	}
	return m, nil
}

// A successful send clears the composer and reloads the thread once.
func (m appModel) onMessageSent(msg messageSentMsg) (tea.Model, tea.Cmd) {
	m.inboxBusy = false
	if msg.err != nil {
		m.logErr("send message", msg.err)
		return m, nil
	}
	m.msgInput.SetValue("")
	m.inboxLoading = true
	return m, m.loadConversationsCmd(m.currentWorkspaceID())
}

func (m appModel) viewInbox() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Inbox") + "\n\n")

	if m.inboxLoading && len(m.conversations) == 0 {
		b.WriteString("  " + styleMuted().Render("Loading conversations..."))
		return b.String()
	}
	if len(m.conversations) == 0 {
		b.WriteString("  " + styleMuted().Render("No conversations yet."))
		return b.String()
	}

	for i, c := range m.conversations {
		cursor := "  "
		if i == m.convIdx && !m.inboxComposing {
			cursor = styleOK().Render("> ")
		}
		state := "open"
		if !c.IsOpen {
			state = "closed"
		}
		b.WriteString(fmt.Sprintf("%s%s (%d messages, %s)\n", cursor, c.Contact.Name, len(c.Messages), state))
	}

	conv := m.conversations[m.convIdx]
	b.WriteString("\n  " + styleTitle().Render("Thread with "+conv.Contact.Name) + "\n")
	msgs := conv.Messages
	if len(msgs) > 8 {
		msgs = msgs[len(msgs)-8:]
	}
	for _, msg := range msgs {
		who := msg.SenderName
		if who == "" {
			who = msg.SenderType
		}
		b.WriteString("  " + styleMuted().Render(who+":") + " " + msg.Content + "\n")
	}

	b.WriteString("\n  " + m.msgInput.View() + "\n")
	if m.inboxBusy {
		b.WriteString("  " + styleMuted().Render("Sending..."))
	}
	return b.String()
}
