package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"careops-cli/internal/api"
	"careops-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Test harness: models are driven synchronously. Commands returned by Update
// are executed inline and only this package's own messages are fed back, so
// cursor ticks and other runtime chatter never enter the loop.

func testDeps(t *testing.T, h http.Handler) Deps {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	sess := session.New(t.TempDir())
	if err := sess.Load(); err != nil {
		t.Fatalf("session load: %v", err)
	}
	return Deps{
		Client:    api.NewClient(srv.URL),
		Session:   sess,
		Workspace: &session.WorkspaceSelection{},
		Logger:    zap.NewNop(),
	}
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case initMsg,
		loginResultMsg, registerResultMsg, verifyResultMsg, resendResultMsg,
		workspacesLoadedMsg, workspaceCreatedMsg, workspaceActivatedMsg,
		setupLoadedMsg, bookingTypeAddedMsg, contactAddedMsg,
		dashboardLoadedMsg, conversationsLoadedMsg, messageSentMsg,
		bookingPlacedMsg:
		return true
	}
	return false
}

func drain(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	queue := []tea.Msg{cmd()}
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					queue = append(queue, c())
				}
			}
			continue
		}
		if !isAppMsg(msg) {
			continue
		}
		model, next := m.Update(msg)
		m = model.(appModel)
		if next != nil {
			queue = append(queue, next())
		}
	}
	return m
}

func apply(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	model, cmd := m.Update(msg)
	return drain(t, model.(appModel), cmd)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, key string) appModel {
	t.Helper()
	return apply(t, m, keyMsg(key))
}

func start(t *testing.T, deps Deps) appModel {
	t.Helper()
	return apply(t, newAppModel(deps), initMsg{})
}
