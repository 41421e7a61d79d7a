package tui

import (
	"context"

	"github.com/tinytelemetry/clash-analyzer/internal/cardart"
	"github.com/tinytelemetry/clash-analyzer/internal/catalog"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Capacity bounds reachable from the keyboard.
const (
	minCapacity = 1
	maxCapacity = 20
)

// SearchState holds the inline card search input.
type SearchState struct {
	searchInput  textinput.Model
	searchActive bool
}

// GridState holds the card grid cursor and scroll position.
type GridState struct {
	visible   []model.Card // catalog narrowed by the session filter
	cursor    int          // index into visible
	scrollRow int          // first rendered grid row
}

// ModalStackState holds the modal stack; the topmost modal receives input.
type ModalStackState struct {
	modalStack []Modal
}

// ArtState tracks the card-art check.
type ArtState struct {
	art        *cardart.Resolver
	artChecked bool
	artMissing int
}

// TrackerModel is the main tracker screen. It renders the session and
// routes user intents into it; it never mutates elixir or history itself.
// Sub-state is organized into embedded structs for readability.
type TrackerModel struct {
	SearchState
	GridState
	ModalStackState
	ArtState

	width  int
	height int

	keys    KeyMap
	session model.SessionController
	snap    model.Snapshot

	// Status line feedback for the last intent.
	lastAction string

	inlineHandlers []inlineHandlerEntry
}

// SessionUpdateMsg carries a snapshot published by the session, typically
// after a regeneration tick.
type SessionUpdateMsg model.Snapshot

// sessionClosedMsg is delivered once the session's update channel closes.
type sessionClosedMsg struct{}

// artCheckedMsg reports the end of the card-art check.
type artCheckedMsg struct {
	missing int
}

// NewTrackerModel creates the tracker screen for a session. art may be nil.
func NewTrackerModel(session model.SessionController, art *cardart.Resolver) *TrackerModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search cards..."
	searchInput.CharLimit = 40
	searchInput.Prompt = "/ "

	m := &TrackerModel{
		SearchState: SearchState{searchInput: searchInput},
		ArtState:    ArtState{art: art},
		keys:        DefaultKeyMap(),
		session:     session,
		snap:        session.Snapshot(),
	}
	m.refreshVisible()

	m.inlineHandlers = []inlineHandlerEntry{
		{isActive: func(m *TrackerModel) bool { return m.searchActive }, handler: searchInputHandler{}},
	}

	return m
}

// Init starts listening for session updates and kicks off the art check.
func (m *TrackerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSessionUpdate(m.session.Updates())}
	if m.art.Enabled() {
		cmds = append(cmds, checkArtCmd(m.art))
	}
	return tea.Batch(cmds...)
}

// waitForSessionUpdate blocks on the session's update channel. It must be
// re-armed after every SessionUpdateMsg.
func waitForSessionUpdate(ch <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return sessionClosedMsg{}
		}
		return SessionUpdateMsg(snap)
	}
}

func checkArtCmd(r *cardart.Resolver) tea.Cmd {
	return func() tea.Msg {
		missing := r.CheckAll(context.Background(), catalog.All())
		return artCheckedMsg{missing: missing}
	}
}

// refreshVisible re-applies the session filter and keeps the cursor in range.
func (m *TrackerModel) refreshVisible() {
	m.visible = m.session.Visible()
	m.clampCursor()
	m.ensureCursorVisible()
}

func (m *TrackerModel) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedCard returns the card under the cursor.
func (m *TrackerModel) selectedCard() (model.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return model.Card{}, false
	}
	return m.visible[m.cursor], true
}

// syncSnapshot pulls the current state after an intent so the view does not
// wait for the published update.
func (m *TrackerModel) syncSnapshot() {
	m.snap = m.session.Snapshot()
}

// nextRegenPeriod returns the regeneration mode after the current one.
func nextRegenPeriod(current float64) float64 {
	for i, p := range model.RegenModes {
		if p == current {
			return model.RegenModes[(i+1)%len(model.RegenModes)]
		}
	}
	return model.RegenModes[0]
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *TrackerModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *TrackerModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *TrackerModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *TrackerModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// TrackerPage adapts TrackerModel to the Page interface.
type TrackerPage struct {
	Model *TrackerModel
}

// NewTrackerPage wraps a TrackerModel as a Page.
func NewTrackerPage(m *TrackerModel) *TrackerPage {
	return &TrackerPage{Model: m}
}

func (p *TrackerPage) ID() string { return "tracker" }

func (p *TrackerPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *TrackerPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, nil
}

func (p *TrackerPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}

// Close releases the session when the program exits.
func (p *TrackerPage) Close() {
	if c, ok := p.Model.session.(interface{ Close() }); ok {
		c.Close()
	}
}
