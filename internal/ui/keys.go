package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wswfws/2673517-six-cities-6/internal/notify"
	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/workflow"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Text-entry contexts swallow most keys.
	if m.currentView == ViewLogin {
		return m.handleLoginKey(msg)
	}
	if m.currentView == ViewOffer && m.composing {
		return m.handleComposeKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil
	}

	switch m.currentView {
	case ViewMain:
		return m.handleMainKey(msg)
	case ViewOffer:
		return m.handleOfferKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	}
	return m, nil
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Direct city tabs 1-6.
	if len(key) == 1 && key >= "1" && key <= "6" {
		idx := int(key[0] - '1')
		if idx < len(state.StaticCities) {
			m = m.selectCity(state.StaticCities[idx])
		}
		return m, nil
	}

	switch key {
	case "h", "left":
		idx := (cityIndex(m.currentCity()) + len(state.StaticCities) - 1) % len(state.StaticCities)
		m = m.selectCity(state.StaticCities[idx])

	case "l", "right":
		idx := (cityIndex(m.currentCity()) + 1) % len(state.StaticCities)
		m = m.selectCity(state.StaticCities[idx])

	case "j", "down":
		if places := m.visiblePlaces(); m.selectedRow < len(places)-1 {
			m.selectedRow++
		}

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}

	case "g", "home":
		m.selectedRow = 0

	case "G", "end":
		if places := m.visiblePlaces(); len(places) > 0 {
			m.selectedRow = len(places) - 1
		}

	case "s":
		m.sortOption = m.sortOption.Next()
		m.selectedRow = 0
		m.savePrefs()

	case "r":
		return m, fetchListingCmd(m.ctx, m.store, m.client)

	case "enter":
		if place, ok := m.selectedPlace(); ok {
			return m.openOffer(place.ID)
		}

	case "f":
		if place, ok := m.selectedPlace(); ok {
			return m.toggleFavorite(place.ID, place.IsFavorite)
		}

	case "F":
		m.currentView = ViewFavorites
		m.favoriteRow = 0

	case "L":
		return m.handleAuthKey()
	}
	return m, nil
}

func (m Model) handleOfferKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.currentView = ViewMain
		m.offerID = ""
		workflow.LeaveOffer(m.store)
		return m, fetchSnapshotCmd(m.store)

	case "c":
		if !m.authenticated() {
			m.pushNotice(notify.SeverityWarning, "Sign in to leave a review")
			m.currentView = ViewLogin
			m.loginFocus = 0
			m.loginInputs[0].Focus()
			return m, nil
		}
		m.composing = true
		m.commentInput.Focus()
		return m, nil

	case "f":
		if detail := m.snapshot.Offers.OfferDetail; detail != nil {
			return m.toggleFavorite(detail.ID, detail.IsFavorite)
		}

	case "F":
		m.currentView = ViewFavorites
		m.favoriteRow = 0

	case "L":
		return m.handleAuthKey()

	default:
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.commentInput.Blur()
		return m, nil

	case "ctrl+r":
		m.commentRating = m.commentRating%5 + 1
		return m, nil

	case "ctrl+s":
		payload := sixcities.CommentPayload{
			Comment: strings.TrimSpace(m.commentInput.Value()),
			Rating:  m.commentRating,
		}
		if err := workflow.ValidateComment(payload); err != nil {
			m.pushNotice(notify.SeverityWarning, err.Error())
			return m, nil
		}
		return m, postCommentCmd(m.ctx, m.store, m.client, m.offerID, payload)
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := m.groupedFavorites()

	switch msg.String() {
	case "esc", "backspace", "F":
		m.currentView = ViewMain

	case "j", "down":
		if m.favoriteRow < len(favorites)-1 {
			m.favoriteRow++
		}

	case "k", "up":
		if m.favoriteRow > 0 {
			m.favoriteRow--
		}

	case "enter":
		if m.favoriteRow < len(favorites) {
			return m.openOffer(favorites[m.favoriteRow].ID)
		}

	case "f":
		if m.favoriteRow < len(favorites) {
			place := favorites[m.favoriteRow]
			return m.toggleFavorite(place.ID, place.IsFavorite)
		}

	case "L":
		return m.handleAuthKey()
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = ViewMain
		m.loginInputs[m.loginFocus].Blur()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.loginInputs[m.loginFocus].Blur()
		m.loginFocus = (m.loginFocus + 1) % 2
		m.loginInputs[m.loginFocus].Focus()
		return m, nil

	case "enter":
		email := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if email == "" || password == "" {
			m.pushNotice(notify.SeverityWarning, "Email and password are required")
			return m, nil
		}
		creds := sixcities.Credentials{Email: email, Password: password}
		return m, loginCmd(m.ctx, m.store, m.client, m.tokens, creds)
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

// handleAuthKey signs out when authenticated, otherwise opens the login form.
func (m Model) handleAuthKey() (tea.Model, tea.Cmd) {
	if m.authenticated() {
		if err := workflow.Logout(m.store, m.tokens); err != nil {
			m.pushNotice(notify.SeverityWarning, "Session token could not be removed")
		} else {
			m.pushNotice(notify.SeverityInfo, "Signed out")
		}
		return m, fetchSnapshotCmd(m.store)
	}
	m.currentView = ViewLogin
	m.loginFocus = 0
	m.loginInputs[0].Focus()
	m.loginInputs[1].Blur()
	return m, nil
}

func (m Model) selectedPlace() (sixcities.Place, bool) {
	places := m.visiblePlaces()
	if m.selectedRow < 0 || m.selectedRow >= len(places) {
		return sixcities.Place{}, false
	}
	return places[m.selectedRow], true
}

func (m Model) openOffer(id string) (tea.Model, tea.Cmd) {
	m.currentView = ViewOffer
	m.offerID = id
	m.composing = false
	m.detailViewport.GotoTop()
	return m, fetchOfferCmd(m.ctx, m.store, m.client, id)
}

func (m Model) toggleFavorite(id string, isFavorite bool) (tea.Model, tea.Cmd) {
	if !m.authenticated() {
		m.pushNotice(notify.SeverityWarning, "Sign in to save favorites")
		m.currentView = ViewLogin
		m.loginFocus = 0
		m.loginInputs[0].Focus()
		return m, nil
	}
	return m, postFavoriteCmd(m.ctx, m.store, m.client, id, !isFavorite)
}
