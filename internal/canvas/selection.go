package canvas

import (
	"github.com/google/uuid"

	"moodboard/internal/models"
)

type SelectionState int

const (
	StateIdle SelectionState = iota
	StateSelected
	StateEditingText
)

// Selection is the exclusive-selection state machine: at most one item
// is selected, and text editing is a sub-state of selection.
type Selection struct {
	state  SelectionState
	itemId uuid.UUID
}

func NewSelection() *Selection {
	return &Selection{state: StateIdle}
}

func (s *Selection) State() SelectionState {
	return s.state
}

// SelectedId returns the selected item while in Selected or
// EditingText.
func (s *Selection) SelectedId() (uuid.UUID, bool) {
	if s.state == StateIdle {
		return uuid.Nil, false
	}
	return s.itemId, true
}

func (s *Selection) ClickCanvas() {
	s.state = StateIdle
	s.itemId = uuid.Nil
}

func (s *Selection) ClickItem(itemId uuid.UUID, itemType models.ItemType) {
	s.itemId = itemId
	if itemType == models.ItemTypeText {
		s.state = StateEditingText
	} else {
		s.state = StateSelected
	}
}

// CloseEditor leaves text editing but keeps the item selected.
func (s *Selection) CloseEditor() {
	if s.state == StateEditingText {
		s.state = StateSelected
	}
}

// CanDelete reports whether a Delete/Backspace key should remove the
// selected item. Keystrokes belong to a focused text input, not the
// canvas.
func (s *Selection) CanDelete(textInputFocused bool) bool {
	return s.state != StateIdle && !textInputFocused
}

func (s *Selection) Clear() {
	s.state = StateIdle
	s.itemId = uuid.Nil
}

// TransformerTarget is a pure function of state: the handle overlay
// attaches to the selected item's node, or to nothing.
func (s *Selection) TransformerTarget() (uuid.UUID, bool) {
	return s.SelectedId()
}
