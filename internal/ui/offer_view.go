package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

const reviewsShown = 10

// renderOffer renders the offer page: detail, neighbors, reviews, and the
// review form while composing.
func (m Model) renderOffer() string {
	offers := m.snapshot.Offers

	if offers.NotFound {
		return m.renderNotFound()
	}
	if offers.LoadingDetail || offers.OfferDetail == nil {
		return m.styles.Muted.Render("Loading offer...")
	}

	if m.composing {
		return m.detailViewport.View() + "\n" + m.renderReviewForm()
	}
	return m.detailViewport.View() + "\n" +
		m.styles.Muted.Render("[esc] back  [c] review  [f] favorite  [↑/↓] scroll")
}

func (m Model) renderNotFound() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("404 Not Found"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render("This offer does not exist or has been removed."))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("[esc] back to the main page"))
	return b.String()
}

// refreshOfferViewport rebuilds the viewport content from the snapshot.
func (m *Model) refreshOfferViewport() {
	if !m.ready || m.currentView != ViewOffer {
		return
	}
	detail := m.snapshot.Offers.OfferDetail
	if detail == nil {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.offerContent(*detail))
}

func (m Model) offerContent(detail sixcities.PlaceDetail) string {
	var b strings.Builder

	if detail.IsPremium {
		b.WriteString(m.styles.Premium.Render("PREMIUM"))
		b.WriteString("  ")
	}
	b.WriteString(m.styles.Header.Render(detail.Title))
	if detail.IsFavorite {
		b.WriteString("  ")
		b.WriteString(m.styles.Favorite.Render("♥ saved"))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s %s\n",
		m.styles.Warning.Render(stars(detail.Rating)),
		m.styles.Text.Render(fmt.Sprintf("%.1f", detail.Rating)),
		m.styles.Muted.Render(fmt.Sprintf("· %s · %d bedrooms · up to %d adults", detail.Type, detail.Bedrooms, detail.MaxAdults)),
	))
	b.WriteString(m.styles.Accent.Render(fmt.Sprintf("€%d", detail.Price)))
	b.WriteString(m.styles.Muted.Render(" / night"))
	b.WriteString("\n\n")

	if len(detail.Goods) > 0 {
		b.WriteString(m.styles.Text.Render("What's inside: "))
		b.WriteString(m.styles.Muted.Render(strings.Join(detail.Goods, ", ")))
		b.WriteString("\n\n")
	}

	host := detail.Host.Name
	if detail.Host.IsPro {
		host += " (Pro)"
	}
	b.WriteString(m.styles.Text.Render("Hosted by " + host))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(detail.Description))
	b.WriteString("\n\n")

	if neighbors := m.snapshot.Offers.Neighbors; len(neighbors) > 0 {
		b.WriteString(m.styles.Header.Render("Other places in the neighbourhood"))
		b.WriteString("\n")
		for _, place := range neighbors {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				m.styles.Text.Render(place.Title),
				m.styles.Accent.Render(fmt.Sprintf("€%d", place.Price)),
				m.styles.Warning.Render(stars(place.Rating)),
			))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderReviews())
	return b.String()
}

func (m Model) renderReviews() string {
	comments := m.snapshot.Offers.Comments

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Reviews · %d", len(comments))))
	b.WriteString("\n")

	if len(comments) == 0 {
		b.WriteString(m.styles.Muted.Render("No reviews yet."))
		b.WriteString("\n")
		return b.String()
	}

	// Newest first, capped like the web client's review list.
	sorted := make([]sixcities.Review, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().After(sorted[j].ParsedDate())
	})
	if len(sorted) > reviewsShown {
		sorted = sorted[:reviewsShown]
	}

	for _, review := range sorted {
		author := review.User.Name
		if review.User.IsPro {
			author += " (Pro)"
		}
		date := review.Date
		if t := review.ParsedDate(); !t.IsZero() {
			date = t.Format("January 2006")
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			m.styles.Text.Render(author),
			m.styles.Warning.Render(stars(float64(review.Rating))),
			m.styles.Muted.Render(date),
		))
		b.WriteString("  " + m.styles.Muted.Render(review.Comment))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) renderReviewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Your review"))
	b.WriteString("  ")
	b.WriteString(m.styles.Warning.Render(stars(float64(m.commentRating))))
	b.WriteString(m.styles.Muted.Render("  ctrl+r to change rating"))
	b.WriteString("\n")
	b.WriteString(m.commentInput.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d/%d characters (min 50)  ·  [ctrl+s] submit  [esc] cancel",
		len([]rune(m.commentInput.Value())), m.commentInput.CharLimit)))
	if m.snapshot.Offers.PostingComment {
		b.WriteString("\n")
		b.WriteString(m.styles.Accent.Render("Publishing..."))
	}
	return b.String()
}
