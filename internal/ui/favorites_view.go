package ui

import (
	"strings"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// renderFavorites renders the saved listings grouped by city, the way the
// web client's favorites page does.
func (m Model) renderFavorites() string {
	favorites := state.Favorites(m.snapshot.Offers.Places)

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Saved listing"))
	b.WriteString("\n\n")

	if len(favorites) == 0 {
		b.WriteString(m.styles.Text.Render("Nothing yet saved."))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Save properties to narrow down search or plan your future trips."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("[esc] back"))
		return b.String()
	}

	index := 0
	for _, city := range state.Cities(favorites) {
		b.WriteString(m.styles.TabActive.Render(city.Name))
		b.WriteString("\n")
		for _, place := range state.PlacesByCity(favorites, city.Name) {
			b.WriteString(m.renderPlaceRow(place, index == m.favoriteRow))
			b.WriteString("\n")
			index++
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("[j/k] move  [enter] open  [f] remove  [esc] back"))
	return b.String()
}

// groupedFavorites returns the saved listings in render order: grouped by
// city, cities in first-seen catalog order.
func (m Model) groupedFavorites() []sixcities.Place {
	favorites := state.Favorites(m.snapshot.Offers.Places)
	var grouped []sixcities.Place
	for _, city := range state.Cities(favorites) {
		grouped = append(grouped, state.PlacesByCity(favorites, city.Name)...)
	}
	return grouped
}
