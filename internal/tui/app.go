package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wax/internal/collection"
	"wax/internal/domain"
	"wax/internal/search"
)

// Tab identifies one of the top-level views
type Tab int

const (
	TabSearch Tab = iota
	TabCollection
	TabWishlist
)

func (t Tab) String() string {
	switch t {
	case TabSearch:
		return "Search"
	case TabCollection:
		return "Collection"
	case TabWishlist:
		return "Wishlist"
	default:
		return "?"
	}
}

// Focus identifies which surface receives key input
type Focus int

const (
	focusList Focus = iota
	focusQuery
	focusFilter
	focusDetail
	focusReview
	focusConfirm
)

// Spinner frames for loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const statusClearDelay = 3 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	keys KeyMap

	// Services
	session *search.Session
	catalog domain.CatalogClient
	svc     *collection.Service
	logger  *slog.Logger

	// UI state
	tab   Tab
	focus Focus

	queryInput  textinput.Model
	filterInput textinput.Model
	reviewInput textarea.Model

	// Search tab
	searchCursor int
	searchOffset int

	// Collection tab
	collectionItems  []domain.EnrichedRelease
	collectionLoaded bool
	filtered         []filterResult
	collectionCursor int
	collectionOffset int

	// Wishlist tab
	wishlistItems  []domain.EnrichedRelease
	wishlistLoaded bool
	wishlistCursor int
	wishlistOffset int

	// Detail view
	detail           *domain.EnrichedRelease
	detailWishlisted bool
	confirmRemoveID  int

	// Dimensions
	width  int
	height int
	ready  bool

	loading      bool
	spinnerFrame int
	statusMsg    string
	statusIsErr  bool
}

// NewModel creates the application model
func NewModel(session *search.Session, catalog domain.CatalogClient, svc *collection.Service, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	query := textinput.New()
	query.Placeholder = "artist, album, label..."
	query.Prompt = "search> "
	query.CharLimit = 120
	query.Focus()

	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "filter> "
	filter.CharLimit = 80

	review := textarea.New()
	review.Placeholder = "Your review..."
	review.CharLimit = 2000
	review.SetHeight(6)

	return Model{
		keys:        DefaultKeyMap(),
		session:     session,
		catalog:     catalog,
		svc:         svc,
		logger:      logger,
		tab:         TabSearch,
		focus:       focusQuery,
		queryInput:  query,
		filterInput: filter,
		reviewInput: review,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, TickCmd(100*time.Millisecond))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.reviewInput.SetWidth(min(msg.Width-8, 80))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.spinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case SearchPageMsg:
		if m.session.Resolve(msg.Req, msg.Result) && msg.Req.Page == 1 {
			m.searchCursor = 0
			m.searchOffset = 0
		}
		return m, nil

	case SearchFailedMsg:
		m.session.Fail(msg.Req, msg.Err)
		return m, nil

	case CollectionLoadedMsg:
		m.loading = false
		m.collectionItems = msg.Items
		m.collectionLoaded = true
		m.filtered = filterItems(m.collectionItems, m.filterInput.Value())
		m.clampCursors()
		return m, nil

	case WishlistLoadedMsg:
		m.loading = false
		m.wishlistItems = msg.Items
		m.wishlistLoaded = true
		m.clampCursors()
		return m, nil

	case ReleaseLoadedMsg:
		m.loading = false
		item := msg.Item
		m.detail = &item
		m.detailWishlisted = msg.Wishlisted
		if m.focus != focusReview && m.focus != focusConfirm {
			m.focus = focusDetail
		}
		return m, nil

	case EntryAddedMsg:
		m.collectionLoaded = false
		return m.refreshAfterChange(msg.ID,
			fmt.Sprintf("added %q to collection", msg.Title))

	case EntryRemovedMsg:
		m.collectionLoaded = false
		return m.refreshAfterChange(msg.ID, "removed from collection")

	case EntryUpdatedMsg:
		m.collectionLoaded = false
		return m.refreshAfterChange(msg.ID, "saved")

	case WishlistChangedMsg:
		m.wishlistLoaded = false
		note := "added to wishlist"
		if !msg.Added {
			note = "removed from wishlist"
		}
		return m.refreshAfterChange(msg.ID, note)

	case ErrMsg:
		m.loading = false
		m.statusMsg = msg.Error()
		m.statusIsErr = true
		m.logger.Warn("ui error", "context", msg.Context, "error", msg.Err)
		return m, ClearStatusCmd(statusClearDelay)

	case StatusMsg:
		m.statusMsg = msg.Message
		m.statusIsErr = msg.IsError
		return m, ClearStatusCmd(statusClearDelay)

	case ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// refreshAfterChange posts a status note and reloads whatever views the
// store change may have invalidated.
func (m Model) refreshAfterChange(id int, note string) (tea.Model, tea.Cmd) {
	m.statusMsg = note
	m.statusIsErr = false

	cmds := []tea.Cmd{ClearStatusCmd(statusClearDelay)}
	if m.detail != nil && m.detail.ID == id {
		cmds = append(cmds, LoadReleaseCmd(m.svc, id))
	}
	switch m.tab {
	case TabCollection:
		m.loading = true
		cmds = append(cmds, LoadCollectionCmd(m.svc))
	case TabWishlist:
		m.loading = true
		cmds = append(cmds, LoadWishlistCmd(m.svc))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusQuery:
		return m.handleQueryKeys(msg)
	case focusFilter:
		return m.handleFilterKeys(msg)
	case focusReview:
		return m.handleReviewKeys(msg)
	case focusConfirm:
		return m.handleConfirmKeys(msg)
	case focusDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

func (m Model) handleQueryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.queryInput.Blur()
		m.focus = focusList
		return m, nil
	case tea.KeyEnter:
		m.queryInput.Blur()
		m.focus = focusList
		req, ok := m.session.Begin(m.queryInput.Value())
		if !ok {
			return m, nil
		}
		m.searchCursor = 0
		m.searchOffset = 0
		return m, FetchPageCmd(m.catalog, req)
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.focus = focusList
		m.filtered = filterItems(m.collectionItems, "")
		m.clampCursors()
		return m, nil
	case tea.KeyEnter:
		m.filterInput.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filtered = filterItems(m.collectionItems, m.filterInput.Value())
	m.collectionCursor = 0
	m.collectionOffset = 0
	return m, cmd
}

func (m Model) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.reviewInput.Blur()
		m.focus = focusDetail
		return m, nil
	case tea.KeyCtrlS:
		m.reviewInput.Blur()
		m.focus = focusDetail
		if m.detail == nil {
			return m, nil
		}
		return m, SetReviewCmd(m.svc, m.detail.ID, m.reviewInput.Value())
	}

	var cmd tea.Cmd
	m.reviewInput, cmd = m.reviewInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmRemoveID
		m.confirmRemoveID = 0
		if m.detail != nil && m.detail.ID == id {
			m.focus = focusDetail
		} else {
			m.focus = focusList
		}
		return m, RemoveEntryCmd(m.svc, id)
	case key.Matches(msg, m.keys.Deny):
		m.confirmRemoveID = 0
		if m.detail != nil {
			m.focus = focusDetail
		} else {
			m.focus = focusList
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.detail = nil
		m.focus = focusList
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.detail.InCollection {
			return m, func() tea.Msg {
				return StatusMsg{Message: "already in collection", IsError: false}
			}
		}
		return m, AddEntryCmd(m.svc, m.detail.ID, m.detail.Title)

	case key.Matches(msg, m.keys.Remove):
		if !m.detail.InCollection {
			return m, nil
		}
		m.confirmRemoveID = m.detail.ID
		m.focus = focusConfirm
		return m, nil

	case key.Matches(msg, m.keys.Wishlist):
		return m, ToggleWishlistCmd(m.svc, m.detail.ID, m.detailWishlisted)

	case key.Matches(msg, m.keys.Rate):
		if !m.detail.InCollection {
			return m, func() tea.Msg {
				return StatusMsg{Message: "add to collection before rating", IsError: false}
			}
		}
		rating := int(msg.String()[0] - '0')
		return m, SetRatingCmd(m.svc, m.detail.ID, rating)

	case key.Matches(msg, m.keys.Review):
		if !m.detail.InCollection {
			return m, func() tea.Msg {
				return StatusMsg{Message: "add to collection before reviewing", IsError: false}
			}
		}
		m.reviewInput.SetValue(m.detail.Review)
		m.reviewInput.Focus()
		m.focus = focusReview
		return m, textarea.Blink

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, LoadReleaseCmd(m.svc, m.detail.ID)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % 3)

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + 2) % 3)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.maxVisible() / 2)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.maxVisible() / 2)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if id, ok := m.selectedID(); ok {
			m.loading = true
			return m, LoadReleaseCmd(m.svc, id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.tab == TabSearch {
			m.focus = focusQuery
			m.queryInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		if m.tab == TabSearch {
			if req, ok := m.session.More(); ok {
				return m, FetchPageCmd(m.catalog, req)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.tab == TabCollection {
			m.focus = focusFilter
			m.filterInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.tab != TabSearch {
			return m, nil
		}
		if id, ok := m.selectedID(); ok {
			if owned, err := m.svc.InCollection(id); err == nil && owned {
				return m, func() tea.Msg {
					return StatusMsg{Message: "already in collection", IsError: false}
				}
			}
			title := m.session.Results()[m.searchCursor].Title
			return m, AddEntryCmd(m.svc, id, title)
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		switch m.tab {
		case TabCollection:
			if id, ok := m.selectedID(); ok {
				m.confirmRemoveID = id
				m.focus = focusConfirm
			}
		case TabWishlist:
			if id, ok := m.selectedID(); ok {
				return m, ToggleWishlistCmd(m.svc, id, true)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Wishlist):
		if m.tab == TabSearch {
			if id, ok := m.selectedID(); ok {
				return m, ToggleWishlistCmd(m.svc, id, false)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		switch m.tab {
		case TabCollection:
			m.loading = true
			return m, LoadCollectionCmd(m.svc)
		case TabWishlist:
			m.loading = true
			return m, LoadWishlistCmd(m.svc)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.detail = nil
	m.focus = focusList

	switch tab {
	case TabCollection:
		if !m.collectionLoaded {
			m.loading = true
			return m, LoadCollectionCmd(m.svc)
		}
	case TabWishlist:
		if !m.wishlistLoaded {
			m.loading = true
			return m, LoadWishlistCmd(m.svc)
		}
	}
	return m, nil
}

// selectedID returns the release id under the cursor on the active tab.
func (m Model) selectedID() (int, bool) {
	switch m.tab {
	case TabSearch:
		results := m.session.Results()
		if m.searchCursor < len(results) {
			return results[m.searchCursor].ID, true
		}
	case TabCollection:
		if m.collectionCursor < len(m.filtered) {
			return m.collectionItems[m.filtered[m.collectionCursor].Index].ID, true
		}
	case TabWishlist:
		if m.wishlistCursor < len(m.wishlistItems) {
			return m.wishlistItems[m.wishlistCursor].ID, true
		}
	}
	return 0, false
}

func (m *Model) moveCursor(delta int) {
	switch m.tab {
	case TabSearch:
		m.searchCursor = clamp(m.searchCursor+delta, len(m.session.Results()))
		m.searchOffset = ensureVisible(m.searchCursor, m.searchOffset, m.maxVisible())
	case TabCollection:
		m.collectionCursor = clamp(m.collectionCursor+delta, len(m.filtered))
		m.collectionOffset = ensureVisible(m.collectionCursor, m.collectionOffset, m.maxVisible())
	case TabWishlist:
		m.wishlistCursor = clamp(m.wishlistCursor+delta, len(m.wishlistItems))
		m.wishlistOffset = ensureVisible(m.wishlistCursor, m.wishlistOffset, m.maxVisible())
	}
}

func (m *Model) clampCursors() {
	m.searchCursor = clamp(m.searchCursor, len(m.session.Results()))
	m.collectionCursor = clamp(m.collectionCursor, len(m.filtered))
	m.wishlistCursor = clamp(m.wishlistCursor, len(m.wishlistItems))
}

// maxVisible returns the list rows that fit between the chrome lines:
// tab bar, input line, pagination line, status bar.
func (m Model) maxVisible() int {
	visible := m.height - 6
	if visible < 1 {
		return 1
	}
	return visible
}

func clamp(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func ensureVisible(cursor, offset, maxVisible int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+maxVisible {
		return cursor - maxVisible + 1
	}
	return offset
}
