package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/router"
)

// View renders the UI based on the active section.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	active := m.router.Active()
	switch active {
	case router.ProfileSection:
		body = m.renderProfile()
	case router.SearchSection:
		body = m.renderSearch()
	case router.AppliedSection:
		body = m.renderApplied()
	}

	parts := []string{m.renderNav(), "", body}
	if m.toast.Visible {
		parts = append(parts, styles.toast.Render(m.toast.Message))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, "", m.help.ShortHelpView(m.helpKeys(active)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderNav() string {
	tabs := []string{}
	for i, nc := range m.router.NavControls() {
		label := fmt.Sprintf("%d %s", i+1, nc.Label)
		if nc.Active {
			tabs = append(tabs, styles.active.Render(label))
		} else {
			tabs = append(tabs, styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderProfile() string {
	title := styles.title.Render("Your Profile")

	button := styles.button.Render(flows.SubmitLabel)
	if m.submitting {
		button = styles.button.Foreground(styles.muted.GetForeground()).Render(flows.SubmittingLabel)
	}

	return fmt.Sprintf("%s\n%s\n%s", title, m.profile.view(), button)
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Find Jobs")

	var results string
	switch {
	case m.loading:
		results = fmt.Sprintf("%s Searching...", m.spinner.View())
	case m.noJobs:
		results = styles.muted.Render(flows.NoJobsText)
	case len(m.jobList.Items()) == 0:
		results = styles.help.Render("Press i to enter a search, enter to run it.")
	default:
		results = m.jobList.View()
	}

	return fmt.Sprintf("%s\n%s\n%s", title, m.search.view(), results)
}

func (m *Model) renderApplied() string {
	if m.detail != nil {
		return m.renderDetail(*m.detail)
	}

	switch {
	case m.noApps:
		return styles.title.Render("Applications") + "\n" + styles.muted.Render(flows.NoApplicationsText)
	case len(m.appList.Items()) == 0:
		return styles.title.Render("Applications") + "\n" + styles.help.Render("Press r to refresh.")
	}
	return m.appList.View()
}

func (m *Model) renderDetail(row flows.ApplicationRow) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(row.Title) + "\n")
	if row.Company != "" {
		b.WriteString(row.Company + "\n")
	}
	b.WriteString(styles.Status(row.Class).Render(row.Label) + "\n\n")

	if row.GeneratedEmail != "" {
		b.WriteString(styles.help.Render("Generated email") + "\n")
		b.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 40)).Render(row.GeneratedEmail) + "\n")
	} else {
		b.WriteString(styles.muted.Render("No email was generated for this application.") + "\n")
	}
	if row.ApplyURL != "" {
		b.WriteString("\nApply Now: " + row.ApplyURL + "\n")
	}
	return b.String()
}

func (m *Model) helpKeys(active router.SectionID) []key.Binding {
	if f := m.activeForm(active); f != nil && f.editing() {
		if active == router.ProfileSection {
			return []key.Binding{m.keys.enter, m.keys.submit, m.keys.back, m.keys.next}
		}
		return []key.Binding{m.keys.enter, m.keys.back, m.keys.next}
	}

	switch active {
	case router.ProfileSection:
		return []key.Binding{m.keys.edit, m.keys.submit, m.keys.next, m.keys.quit}
	case router.SearchSection:
		return []key.Binding{m.keys.edit, m.keys.enter, m.keys.open, m.keys.next, m.keys.quit}
	case router.AppliedSection:
		if m.detail != nil {
			return []key.Binding{m.keys.back, m.keys.quit}
		}
		return []key.Binding{m.keys.enter, m.keys.open, m.keys.refresh, m.keys.next, m.keys.quit}
	}
	return m.keys.ShortHelp()
}
