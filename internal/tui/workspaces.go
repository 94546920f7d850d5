package tui

import (
	"strings"

	"careops-cli/internal/api"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Workspace form focus order: name, address, contact email, timezone picker.
const wsFieldCount = 4

func (m appModel) enterWorkspaces() (appModel, tea.Cmd) {
	m.wsLoading = true
	m.wsShowForm = false
	m.wsBusy = false
	m.wsErr = ""
	return m, m.loadWorkspacesCmd()
}

func (m appModel) updateWorkspaces(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.wsShowForm {
		return m.updateWorkspaceForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok && m.wsList.FilterState() != list.Filtering {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "n":
			m.wsShowForm = true
			m.wsErr = ""
			m.wsFocus = 0
			m.wsTZIdx = 0
			for i := range m.wsInputs {
				m.wsInputs[i].SetValue("")
				m.wsInputs[i].Blur()
			}
			m.wsInputs[0].Focus()
			return m, textinput.Blink
		case "ctrl+l":
			if err := m.deps.Session.Logout(); err != nil {
				m.logErr("logout", err)
			}
			mm, cmd := m.navigate(viewLogin)
			return mm, cmd
		case "enter":
			item, ok := m.wsList.SelectedItem().(workspaceItem)
			if !ok {
				return m, nil
			}
			m.deps.Workspace.Set(item.workspace)
			if item.workspace.IsActive {
				mm, cmd := m.navigate(viewDashboard)
				return mm, cmd
			}
			mm, cmd := m.navigate(viewSetup)
			return mm, cmd
		}
	}

	var cmd tea.Cmd
	m.wsList, cmd = m.wsList.Update(msg)
	return m, cmd
}

func (m appModel) updateWorkspaceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateWorkspaceFormInputs(msg)
	}

	switch key.String() {
	case "esc":
		m.wsShowForm = false
		m.wsErr = ""
		return m, nil
	case "enter":
		if m.wsBusy {
			return m, nil
		}
		name := strings.TrimSpace(m.wsInputs[0].Value())
		if name == "" {
			m.wsErr = "business name is required"
			return m, nil
		}
		m.wsBusy = true
		m.wsErr = ""
		return m, m.createWorkspaceCmd(api.WorkspaceCreateRequest{
			Name:         name,
			Address:      strings.TrimSpace(m.wsInputs[1].Value()),
			Timezone:     timezones[m.wsTZIdx],
			ContactEmail: strings.TrimSpace(m.wsInputs[2].Value()),
		})
	case "left", "right":
		if m.wsFocus == wsFieldCount-1 {
			d := 1
			if key.String() == "left" {
				d = -1
			}
			m.wsTZIdx = cycle(m.wsTZIdx, d, len(timezones))
			return m, nil
		}
	}

	if d := deltaFor(key.String()); d != 0 {
		if m.wsFocus < len(m.wsInputs) {
			m.wsInputs[m.wsFocus].Blur()
		}
		m.wsFocus = cycle(m.wsFocus, d, wsFieldCount)
		if m.wsFocus < len(m.wsInputs) {
			m.wsInputs[m.wsFocus].Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	return m.updateWorkspaceFormInputs(msg)
}

func (m appModel) updateWorkspaceFormInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.wsFocus >= len(m.wsInputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.wsInputs[m.wsFocus], cmd = m.wsInputs[m.wsFocus].Update(msg)
	return m, cmd
}

func (m appModel) onWorkspacesLoaded(msg workspacesLoadedMsg) (tea.Model, tea.Cmd) {
	m.wsLoading = false
	if msg.err != nil {
		m.logErr("load workspaces", msg.err)
		m.wsErr = msg.err.Error()
		return m, nil
	}
	m.workspaces = msg.workspaces
	items := make([]list.Item, 0, len(msg.workspaces))
	for _, ws := range msg.workspaces {
		items = append(items, workspaceItem{workspace: ws})
	}
	return m, m.wsList.SetItems(items)
}

func (m appModel) onWorkspaceCreated(msg workspaceCreatedMsg) (tea.Model, tea.Cmd) {
	m.wsBusy = false
	if msg.err != nil {
		m.logErr("create workspace", msg.err)
		m.wsErr = msg.err.Error()
		return m, nil
	}
	// A fresh workspace goes straight to its setup wizard.
	m.wsShowForm = false
	m.deps.Workspace.Set(*msg.workspace)
	mm, cmd := m.navigate(viewSetup)
	return mm, cmd
}

func (m appModel) viewWorkspaces() string {
	if m.wsShowForm {
		return m.viewWorkspaceForm()
	}

	var b strings.Builder
	b.WriteString(styleTitle().Render("Your workspaces") + "\n\n")
	switch {
	case m.wsLoading:
		b.WriteString("  " + styleMuted().Render("Loading workspaces..."))
	case m.wsErr != "":
		b.WriteString("  " + styleError().Render(m.wsErr))
	case len(m.workspaces) == 0:
		b.WriteString("  " + styleMuted().Render("No workspaces yet. Press n to create one."))
	default:
		b.WriteString(m.wsList.View())
	}
	return b.String()
}

func (m appModel) viewWorkspaceForm() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("New workspace") + "\n\n")
	labels := []string{"Business Name", "Address", "Contact Email"}
	for i, in := range m.wsInputs {
		b.WriteString("  " + labels[i] + "\n  " + in.View() + "\n")
	}

	b.WriteString("  Timezone\n  ")
	for i, tz := range timezones {
		b.WriteString(styleButton(i == m.wsTZIdx && m.wsFocus == wsFieldCount-1).Render(tz))
		if i == m.wsTZIdx {
			b.WriteString(styleOK().Render("*"))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch {
	case m.wsBusy:
		b.WriteString("  " + styleMuted().Render("Creating workspace..."))
	case m.wsErr != "":
		b.WriteString("  " + styleError().Render(m.wsErr))
	default:
		b.WriteString("  " + styleMuted().Render("enter creates the workspace, esc cancels"))
	}
	return b.String()
}
