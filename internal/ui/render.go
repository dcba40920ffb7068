package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wswfws/2673517-six-cities-6/internal/notify"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// renderMain renders the full frame: header, active view, notice footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.currentView {
	case ViewMain:
		b.WriteString(m.renderCities())
	case ViewOffer:
		b.WriteString(m.renderOffer())
	case ViewFavorites:
		b.WriteString(m.renderFavorites())
	case ViewLogin:
		b.WriteString(m.renderLogin())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	logo := m.styles.Header.Render("six cities")

	auth := m.styles.Muted.Render("checking session...")
	switch m.snapshot.User.Status {
	case state.AuthAuthenticated:
		email := ""
		if m.snapshot.User.Profile != nil {
			email = m.snapshot.User.Profile.Email
		}
		favorites := len(state.Favorites(m.snapshot.Offers.Places))
		auth = m.styles.Text.Render(email) + m.styles.Favorite.Render(fmt.Sprintf("  %d", favorites)) +
			m.styles.Muted.Render("  [L]ogout")
	case state.AuthUnauthenticated:
		auth = m.styles.Muted.Render("[L]ogin")
	}

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(auth)
	if gap < 1 {
		gap = 1
	}
	line := logo + strings.Repeat(" ", gap) + auth

	bar := m.styles.Muted.Render("[1-6/h/l] city  [j/k] move  [enter] open  [f] favorite  [F] favorites  [s] sort  [?] help  [q] quit")
	return line + "\n" + bar + "\n"
}

func (m Model) renderFooter() string {
	if len(m.footer) == 0 {
		return ""
	}
	var lines []string
	for _, notice := range m.footer {
		style := m.styles.Muted
		switch notice.Severity {
		case notify.SeverityError:
			style = m.styles.Danger
		case notify.SeverityWarning:
			style = m.styles.Warning
		case notify.SeverityInfo:
			style = m.styles.Success
		}
		lines = append(lines, style.Render("• "+notice.Text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"1-6, h/l", "Switch city"},
		{"j/k, g/G", "Move selection"},
		{"enter", "Open offer"},
		{"esc", "Back"},
		{"s", "Cycle sort order"},
		{"r", "Reload places"},
		{"f", "Toggle favorite"},
		{"F", "Favorites view"},
		{"L", "Sign in / sign out"},
		{"c", "Write a review (offer view)"},
		{"ctrl+r", "Cycle review rating (while composing)"},
		{"ctrl+s", "Submit review (while composing)"},
		{"T", "Cycle theme"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("six cities — keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Accent.Render(fmt.Sprintf("%-10s", row.key)),
			m.styles.Text.Render(row.desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return m.styles.Box.Render(b.String())
}

// stars renders a 0-5 rating as filled and hollow stars.
func stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
