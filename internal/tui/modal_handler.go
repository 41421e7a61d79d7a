package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on TrackerModel; the topmost modal
// receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalHandler handles key and mouse events for an inline input mode.
// Used only by the search input, which is part of the tracker layout and
// not a modal.
type ModalHandler interface {
	// HandleKey processes a key press. Return handled=true if consumed.
	HandleKey(m *TrackerModel, msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
	// HandleMouse processes mouse events. Return handled=true if consumed.
	HandleMouse(m *TrackerModel, msg tea.MouseMsg) (handled bool, cmd tea.Cmd)
}

// inlineHandlerEntry pairs an activation predicate with an inline handler.
type inlineHandlerEntry struct {
	isActive func(m *TrackerModel) bool
	handler  ModalHandler
}
