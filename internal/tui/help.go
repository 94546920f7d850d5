package tui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# CareOps keys

## Everywhere

- **f1** toggle this help
- **ctrl+c** quit

## Sign in

- **ctrl+r** create an account
- **ctrl+b** public booking page

## Workspaces

- **enter** open a workspace (active ones land on the dashboard,
  the rest resume setup)
- **n** new workspace
- **/** filter the list
- **ctrl+l** sign out

## Setup

- **ctrl+t** switch between Setup and Preview
- **enter** add the focused item, or Go Live on the button

## Dashboard

- **i** inbox, **r** reload, **esc** back to workspaces

## Inbox

- **tab** switch between the conversation list and the composer
- **enter** send the composed message
`

func (m appModel) viewHelp() string {
	width := m.width - 4
	if width < 40 || width > 100 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out + styleMuted().Render("  esc closes help")
}
