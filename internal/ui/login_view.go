package ui

import "strings"

// renderLogin renders the sign-in form.
func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Sign in"))
	b.WriteString("\n\n")

	labels := [2]string{"E-mail", "Password"}
	for i, input := range m.loginInputs {
		label := m.styles.Muted.Render(labels[i])
		if i == m.loginFocus {
			label = m.styles.Accent.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Muted.Render("[tab] switch field  [enter] sign in  [esc] cancel"))
	return b.String()
}
