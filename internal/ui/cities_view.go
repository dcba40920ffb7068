package ui

import (
	"fmt"
	"strings"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// renderCities renders the main view: city tabs plus the sorted place list
// for the active city.
func (m Model) renderCities() string {
	var b strings.Builder

	b.WriteString(m.renderCityTabs())
	b.WriteString("\n\n")

	if m.snapshot.Offers.LoadingPlaces && len(m.snapshot.Offers.Places) == 0 {
		b.WriteString(m.styles.Muted.Render("Loading places..."))
		return b.String()
	}

	places := m.visiblePlaces()
	if len(places) == 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("No places to stay available in %s", m.currentCity())))
		return b.String()
	}

	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%d places to stay in %s", len(places), m.currentCity())))
	b.WriteString(m.styles.Muted.Render("  ·  " + m.sortOption.String()))
	b.WriteString("\n\n")

	maxRows := m.contentHeight() - 4
	b.WriteString(m.renderPlaceRows(places, m.selectedRow, maxRows))
	return b.String()
}

func (m Model) renderCityTabs() string {
	var tabs []string
	current := m.currentCity()
	for i, city := range state.StaticCities {
		label := fmt.Sprintf("%d %s", i+1, city)
		if city == current {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

// renderPlaceRows renders a window of the list keeping the selection visible.
func (m Model) renderPlaceRows(places []sixcities.Place, selected, maxRows int) string {
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if selected >= maxRows {
		start = selected - maxRows + 1
	}
	end := start + maxRows
	if end > len(places) {
		end = len(places)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, m.renderPlaceRow(places[i], i == selected))
	}
	if end < len(places) {
		rows = append(rows, m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(places)-end)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPlaceRow(place sixcities.Place, selected bool) string {
	cursor := "  "
	titleStyle := m.styles.Text
	if selected {
		cursor = m.styles.Selected.Render("> ")
		titleStyle = m.styles.Selected
	}

	marker := " "
	if place.IsFavorite {
		marker = m.styles.Favorite.Render("♥")
	}
	premium := ""
	if place.IsPremium {
		premium = m.styles.Premium.Render(" PREMIUM")
	}

	return fmt.Sprintf("%s%s %s%s  %s  %s  %s",
		cursor,
		marker,
		titleStyle.Render(place.Title),
		premium,
		m.styles.Accent.Render(fmt.Sprintf("€%d/night", place.Price)),
		m.styles.Warning.Render(stars(place.Rating)),
		m.styles.Muted.Render(place.Type),
	)
}
