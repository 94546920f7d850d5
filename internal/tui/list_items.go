package tui

import (
	"fmt"
	"strings"

	"careops-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type workspaceItem struct {
	workspace model.Workspace
}

func (i workspaceItem) FilterValue() string { return i.workspace.Name }
func (i workspaceItem) Title() string {
	badge := "Setup Pending"
	if i.workspace.IsActive {
		badge = "Active"
	}
	return fmt.Sprintf("%s  [%s]", i.workspace.Name, badge)
}
func (i workspaceItem) Description() string {
	parts := []string{}
	if a := strings.TrimSpace(i.workspace.Address); a != "" {
		parts = append(parts, a)
	}
	parts = append(parts, "Zone: "+i.workspace.Timezone)
	return strings.Join(parts, "  ")
}

func newList(title, help string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// The app renders its own header/footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("workspace", "workspaces")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
