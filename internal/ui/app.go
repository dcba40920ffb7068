package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wswfws/2673517-six-cities-6/internal/notify"
	"github.com/wswfws/2673517-six-cities-6/internal/prefs"
	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
	"github.com/wswfws/2673517-six-cities-6/internal/workflow"
)

// View represents the current active view.
type View int

const (
	ViewMain View = iota
	ViewOffer
	ViewFavorites
	ViewLogin
)

const (
	refreshTick    = 500 * time.Millisecond
	noticeWindow   = 8 * time.Second
	noticeMaxShown = 3
	headerLines    = 3
	footerLines    = 2
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	ctx       context.Context
	client    sixcities.Backend
	store     *state.Store
	tokens    *token.Store
	notices   *notify.Center
	prefsPath string

	// UI state
	theme    Theme
	styles   Styles
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	currentView View
	snapshot    state.Snapshot
	footer      []notify.Notice

	// Main view
	sortOption  state.SortOption
	selectedRow int

	// Offer view
	offerID        string
	detailViewport viewport.Model
	composing      bool
	commentInput   textarea.Model
	commentRating  int

	// Favorites view
	favoriteRow int

	// Login view
	loginInputs [2]textinput.Model
	loginFocus  int
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		tokens:      opts.Tokens,
		notices:     opts.Notices,
		prefsPath:   opts.PrefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewMain,
		sortOption:  sortOptionFromLabel(opts.Sort),
	}

	// The store owns the city selection; seed it with the restored
	// preference so the first frame shows the right tab.
	if m.store != nil {
		m.store.Dispatch(state.SetCity{City: state.StaticCities[cityIndex(opts.City)]})
		m.snapshot = m.store.Snapshot()
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	m.loginInputs = [2]textinput.Model{email, password}

	comment := textarea.New()
	comment.Placeholder = "Tell how was your stay, what you like and what can be improved"
	comment.CharLimit = workflow.MaxCommentLength
	comment.SetHeight(4)
	m.commentInput = comment
	m.commentRating = 5

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(refreshTick),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = m.contentHeight()
		}
		m.commentInput.SetWidth(min(msg.Width-4, 72))
		m.refreshOfferViewport()
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(refreshTick))

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.notices != nil {
			m.footer = m.notices.Recent(noticeMaxShown, noticeWindow)
		}
		m.clampSelection()
		m.refreshOfferViewport()
		return m, nil

	case listingDoneMsg:
		if msg.err != nil {
			m.pushNotice(notify.SeverityError, "Failed to load places")
		}
		return m, fetchSnapshotCmd(m.store)

	case offerDoneMsg:
		if msg.err != nil {
			m.pushNotice(notify.SeverityError, msg.err.Error())
		}
		return m, fetchSnapshotCmd(m.store)

	case commentDoneMsg:
		if msg.err != nil {
			m.pushNotice(notify.SeverityError, msg.err.Error())
		} else {
			m.composing = false
			m.commentInput.Reset()
			m.commentInput.Blur()
			m.commentRating = 5
			m.pushNotice(notify.SeverityInfo, "Review published")
		}
		return m, fetchSnapshotCmd(m.store)

	case favoriteDoneMsg:
		if msg.err != nil {
			m.pushNotice(notify.SeverityError, "Failed to update favorites")
		}
		return m, fetchSnapshotCmd(m.store)

	case loginDoneMsg:
		if msg.err != nil {
			m.pushNotice(notify.SeverityError, msg.err.Error())
			return m, fetchSnapshotCmd(m.store)
		}
		m.currentView = ViewMain
		m.loginInputs[0].Reset()
		m.loginInputs[1].Reset()
		m.pushNotice(notify.SeverityInfo, "Signed in")
		return m, fetchSnapshotCmd(m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) pushNotice(severity notify.Severity, text string) {
	if m.notices == nil {
		return
	}
	m.notices.Push(severity, text)
	m.footer = m.notices.Recent(noticeMaxShown, noticeWindow)
}

func (m Model) contentHeight() int {
	h := m.height - headerLines - footerLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) clampSelection() {
	places := m.visiblePlaces()
	if m.selectedRow >= len(places) {
		m.selectedRow = len(places) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	favorites := state.Favorites(m.snapshot.Offers.Places)
	if m.favoriteRow >= len(favorites) {
		m.favoriteRow = len(favorites) - 1
	}
	if m.favoriteRow < 0 {
		m.favoriteRow = 0
	}
}

func (m Model) visiblePlaces() []sixcities.Place {
	city := m.currentCity()
	return state.SortPlaces(state.PlacesByCity(m.snapshot.Offers.Places, city), m.sortOption)
}

func (m Model) currentCity() string {
	if city := m.snapshot.Offers.City; city != "" {
		return city
	}
	return state.DefaultCity
}

// selectCity makes name the active city in the store and resyncs the view
// immediately instead of waiting for the next snapshot tick.
func (m Model) selectCity(name string) Model {
	m.store.Dispatch(state.SetCity{City: name})
	m.snapshot = m.store.Snapshot()
	m.selectedRow = 0
	m.savePrefs()
	return m
}

func (m Model) authenticated() bool {
	return m.snapshot.User.Status == state.AuthAuthenticated
}

func (m Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		City:  m.currentCity(),
		Sort:  m.sortOption.String(),
	})
}

func cityIndex(name string) int {
	for i, city := range state.StaticCities {
		if city == name {
			return i
		}
	}
	return 0
}

func sortOptionFromLabel(label string) state.SortOption {
	for _, option := range []state.SortOption{state.SortPopular, state.SortPriceAsc, state.SortPriceDesc, state.SortTopRated} {
		if option.String() == label {
			return option
		}
	}
	return state.SortPopular
}
