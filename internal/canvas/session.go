package canvas

import (
	"time"

	"github.com/google/uuid"

	"moodboard/internal/interfaces"
	"moodboard/internal/models"
)

// Session owns one client's view of one board: the local scene, the
// selection state machine and the sync controller. All mutation enters
// through its event methods.
type Session struct {
	BoardId   uuid.UUID
	Scene     *Scene
	Selection *Selection
	Sync      *SyncController
	Ingest    *Ingestor

	flags    *TransientFlags
	viewport Point
}

func NewSession(
	boardId uuid.UUID,
	store interfaces.ItemStore,
	uploader Uploader,
	previews interfaces.PreviewFetcher,
	debounce time.Duration,
) *Session {
	scene := NewScene()
	flags := NewTransientFlags()
	sync := NewSyncController(boardId, store, uploader, scene, flags, debounce)

	session := &Session{
		BoardId:   boardId,
		Scene:     scene,
		Selection: NewSelection(),
		Sync:      sync,
		flags:     flags,
	}
	session.Ingest = NewIngestor(sync, previews, session.ViewportCenter)
	return session
}

// SetViewport records the canvas size so pastes without a pointer
// position land in the middle of it.
func (s *Session) SetViewport(width, height float64) {
	s.viewport = Point{X: width / 2, Y: height / 2}
}

func (s *Session) ViewportCenter() Point {
	return s.viewport
}

// Items returns the scene in paint order with transient upload flags
// merged into content for rendering.
func (s *Session) Items() []models.BoardItem {
	items := s.Scene.Snapshot()
	for i := range items {
		items[i] = s.flags.Decorate(items[i])
	}
	return items
}

// ClickItem selects the item; clicking a text item opens its editor.
func (s *Session) ClickItem(itemId uuid.UUID) {
	item, ok := s.Scene.Get(itemId)
	if !ok {
		return
	}
	s.Selection.ClickItem(item.ID, item.Type)
}

func (s *Session) ClickCanvas() {
	s.Selection.ClickCanvas()
}

// DoubleClickCanvas drops a fresh text item at the click point. The new
// item is not auto-selected.
func (s *Session) DoubleClickCanvas(x, y float64) (*models.BoardItem, error) {
	return s.AddText(Point{X: x, Y: y})
}

// DragEnd persists the moved item's position.
func (s *Session) DragEnd(itemId uuid.UUID, node NodeState) {
	s.Sync.QueueUpdate(itemId, DragEndPatch(node))
}

// TransformEnd folds the gesture's scale into the item box and persists
// position, size and rotation as one patch.
func (s *Session) TransformEnd(itemId uuid.UUID, node NodeState) NodeState {
	patch, normalized := TransformEndPatch(node)
	s.Sync.QueueUpdate(itemId, patch)
	return normalized
}

// EditText streams live text edits through the debounced update path.
func (s *Session) EditText(itemId uuid.UUID, content models.ItemContent) {
	if item, ok := s.Scene.Get(itemId); !ok || item.Type != models.ItemTypeText {
		return
	}
	s.Sync.QueueUpdate(itemId, &models.UpdateBoardItemRequestBody{Content: content})
}

func (s *Session) CloseEditor() {
	s.Selection.CloseEditor()
}

// KeyDelete handles Delete/Backspace: removes the selected item unless
// a text input owns the keystroke.
func (s *Session) KeyDelete(textInputFocused bool) bool {
	if !s.Selection.CanDelete(textInputFocused) {
		return false
	}
	itemId, ok := s.Selection.SelectedId()
	if !ok {
		return false
	}
	s.Sync.DeleteItem(itemId)
	s.Selection.Clear()
	return true
}

func (s *Session) Paste(event PasteEvent) (*models.BoardItem, error) {
	return s.Ingest.HandlePaste(event)
}

// Toolbar creation operations. Each uses the type's default content and
// size, anchored per placement rules.

func (s *Session) AddText(anchor Point) (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeText, models.DefaultTextContent(), anchor)
}

func (s *Session) AddShape(shapeType string) (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeShape, models.DefaultShapeContent(shapeType), s.ViewportCenter())
}

func (s *Session) AddIcon(icon string) (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeIcon, models.DefaultIconContent(icon), s.ViewportCenter())
}

func (s *Session) AddLine() (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeLine, models.DefaultLineContent(), s.ViewportCenter())
}

func (s *Session) AddArrow() (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeArrow, models.DefaultArrowContent(), s.ViewportCenter())
}

func (s *Session) AddSubboard(boardId string) (*models.BoardItem, error) {
	return s.createAt(models.ItemTypeSubboard, models.DefaultSubboardContent(boardId), s.ViewportCenter())
}

// AddPhotoFromURL places an already-uploaded image, e.g. from the file
// picker, centered on the anchor.
func (s *Session) AddPhotoFromURL(url string, anchor Point) (*models.BoardItem, error) {
	return s.createAt(models.ItemTypePhoto, models.PhotoContentFor(url), anchor)
}

func (s *Session) createAt(t models.ItemType, content models.ItemContent, anchor Point) (*models.BoardItem, error) {
	width, height := DefaultSize(t)
	x, y := PlacementFor(t, anchor)
	return s.Sync.CreateItem(&models.CreateBoardItemRequestBody{
		Type:      t,
		Content:   content,
		PositionX: x,
		PositionY: y,
		Width:     width,
		Height:    height,
	})
}

// Close flushes pending debounced writes so the last edit survives
// teardown.
func (s *Session) Close() {
	s.Sync.Close()
}
