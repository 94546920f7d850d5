package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) enterDashboard() (appModel, tea.Cmd) {
	m.dashLoading = true
	return m, m.loadDashboardCmd(m.currentWorkspaceID())
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "w":
		mm, cmd := m.navigate(viewWorkspaces)
		return mm, cmd
	case "i":
		mm, cmd := m.navigate(viewInbox)
		return mm, cmd
	case "r":
		if m.dashLoading {
			return m, nil
		}
		m.dashLoading = true
		return m, m.loadDashboardCmd(m.currentWorkspaceID())
	}
	return m, nil
}

func (m appModel) onDashboardLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.dashLoading = false
	if msg.err != nil {
		m.logErr("load dashboard", msg.err)
		return m, nil
	}
	m.dashboard = msg.snapshot
	return m, nil
}

func (m appModel) viewDashboard() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Dashboard") + "\n\n")

	if m.dashLoading && m.dashboard == nil {
		b.WriteString("  " + styleMuted().Render("Loading..."))
		return b.String()
	}
	if m.dashboard == nil {
		b.WriteString("  " + styleError().Render("Dashboard unavailable. Press r to retry."))
		return b.String()
	}

	s := m.dashboard.Stats
	stats := []struct {
		label string
		value string
	}{
		{"Today's bookings", fmt.Sprintf("%d", s.TodayBookings)},
		{"Upcoming", fmt.Sprintf("%d", s.UpcomingBookings)},
		{"New inquiries", fmt.Sprintf("%d", s.NewInquiries)},
		{"Pending forms", fmt.Sprintf("%d", s.PendingForms)},
		{"Low inventory", fmt.Sprintf("%d", s.LowInventoryCount)},
		{"Revenue", fmt.Sprintf("$%.2f", s.TotalRevenue)},
	}
	for _, st := range stats {
		b.WriteString(fmt.Sprintf("  %-18s %s\n", st.label, st.value))
	}

	if len(m.dashboard.Alerts) > 0 {
		b.WriteString("\n  " + styleTitle().Render("Alerts") + "\n")
		for _, a := range m.dashboard.Alerts {
			line := a.Message
			if line == "" {
				line = a.Type
			}
			b.WriteString("  " + styleWarn().Render("! "+line) + "\n")
		}
	}

	if len(m.dashboard.RecentBookings) > 0 {
		b.WriteString("\n  " + styleTitle().Render("Recent bookings") + "\n")
		for _, bk := range m.dashboard.RecentBookings {
			b.WriteString(fmt.Sprintf("  #%d %s [%s]\n", bk.ID, bk.BookingType, bk.Status))
		}
	}

	if m.dashLoading {
		b.WriteString("\n  " + styleMuted().Render("Refreshing..."))
	}
	return b.String()
}
