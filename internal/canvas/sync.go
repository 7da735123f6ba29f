package canvas

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"moodboard/internal/errs"
	"moodboard/internal/interfaces"
	"moodboard/internal/models"
)

// DefaultDebounce is the quiet period for coalescing rapid edits into a
// single remote write.
const DefaultDebounce = 500 * time.Millisecond

// Uploader is the slice of the file manager the photo flow needs.
type Uploader interface {
	UploadBoardImage(fileName string, file io.Reader, fileSize int64, contentType string) (string, error)
}

// SyncController reconciles the local scene with the remote store.
// Creates and deletes go out immediately; updates are debounced per
// item so concurrent edits to different items never starve each other.
type SyncController struct {
	boardId  uuid.UUID
	store    interfaces.ItemStore
	uploader Uploader
	scene    *Scene
	flags    *TransientFlags
	debounce time.Duration
	onChange func()

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	pending map[uuid.UUID]*models.UpdateBoardItemRequestBody
}

func NewSyncController(
	boardId uuid.UUID,
	store interfaces.ItemStore,
	uploader Uploader,
	scene *Scene,
	flags *TransientFlags,
	debounce time.Duration,
) *SyncController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SyncController{
		boardId:  boardId,
		store:    store,
		uploader: uploader,
		scene:    scene,
		flags:    flags,
		debounce: debounce,
		timers:   make(map[uuid.UUID]*time.Timer),
		pending:  make(map[uuid.UUID]*models.UpdateBoardItemRequestBody),
	}
}

// SetOnChange registers a hook fired after every local scene change.
func (c *SyncController) SetOnChange(fn func()) {
	c.onChange = fn
}

func (c *SyncController) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Refresh pulls the remote item list into the scene. The result is
// discarded while a temp-item hold is open.
func (c *SyncController) Refresh() error {
	items, err := c.store.ListItems(c.boardId)
	if err != nil {
		log.Printf("Error refreshing items for board %s: %v", c.boardId, err)
		return err
	}
	if c.scene.ReplaceAll(items) {
		c.notify()
	}
	return nil
}

// CreateItem persists immediately and merges the server-assigned item
// into the scene.
func (c *SyncController) CreateItem(body *models.CreateBoardItemRequestBody) (*models.BoardItem, error) {
	item, err := c.store.CreateItem(c.boardId, body)
	if err != nil {
		log.Printf("Error creating %s item on board %s: %v", body.Type, c.boardId, err)
		return nil, err
	}
	c.scene.Upsert(*item)
	c.notify()
	return item, nil
}

// QueueUpdate applies the patch to the local scene at once and
// schedules the remote write. Rapid successive patches to the same item
// collapse: only the last one within the quiet window is sent.
func (c *SyncController) QueueUpdate(itemId uuid.UUID, updates *models.UpdateBoardItemRequestBody) {
	if updates == nil || !updates.HasUpdates() {
		return
	}

	if c.scene.Patch(itemId, updates) {
		c.notify()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[itemId] = updates
	if timer, ok := c.timers[itemId]; ok {
		timer.Stop()
	}
	c.timers[itemId] = time.AfterFunc(c.debounce, func() {
		c.flush(itemId)
	})
}

func (c *SyncController) takePending(itemId uuid.UUID) *models.UpdateBoardItemRequestBody {
	c.mu.Lock()
	defer c.mu.Unlock()
	updates, ok := c.pending[itemId]
	if !ok {
		return nil
	}
	delete(c.pending, itemId)
	if timer, ok := c.timers[itemId]; ok {
		timer.Stop()
		delete(c.timers, itemId)
	}
	return updates
}

func (c *SyncController) hasPending(itemId uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[itemId]
	return ok
}

func (c *SyncController) flush(itemId uuid.UUID) {
	updates := c.takePending(itemId)
	if updates == nil {
		return
	}

	// The item may have been deleted while the write was pending, or it
	// may still be an upload placeholder the store knows nothing about.
	if !c.scene.Contains(itemId) {
		return
	}
	if state, ok := c.flags.Get(itemId); ok && state.Uploading {
		return
	}

	item, err := c.store.UpdateItem(c.boardId, itemId, updates)
	if err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			log.Printf("Update for item %s dropped, item no longer exists", itemId)
			return
		}
		log.Printf("Error updating item %s on board %s: %v", itemId, c.boardId, err)
		return
	}

	// Keep the server copy only when nothing newer is queued locally and
	// the item has not been deleted in the meantime.
	if !c.hasPending(itemId) && c.scene.UpsertIfPresent(*item) {
		c.notify()
	}
}

// Flush sends all pending patches now. Call on session teardown so the
// final edit of a gesture is never dropped.
func (c *SyncController) Flush() {
	c.mu.Lock()
	ids := make([]uuid.UUID, 0, len(c.pending))
	for itemId := range c.pending {
		ids = append(ids, itemId)
	}
	c.mu.Unlock()

	for _, itemId := range ids {
		c.flush(itemId)
	}
}

func (c *SyncController) Close() {
	c.Flush()
}

// DeleteItem removes the item locally first, then fires the remote
// delete. A store miss is non-fatal; the local state already moved on.
func (c *SyncController) DeleteItem(itemId uuid.UUID) {
	c.takePending(itemId)
	c.scene.RemoveById(itemId)
	c.flags.Clear(itemId)
	c.notify()

	if err := c.store.DeleteItem(c.boardId, itemId); err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			log.Printf("Delete for item %s: already gone", itemId)
			return
		}
		log.Printf("Error deleting item %s on board %s: %v", itemId, c.boardId, err)
	}
}

// PhotoUpload describes a pasted or picked image file heading for the
// object store.
type PhotoUpload struct {
	FileName    string
	Reader      io.Reader
	Size        int64
	ContentType string

	// PreviewURL is a local resource shown while the upload runs;
	// ReleasePreview frees it and runs only after the real item has
	// replaced the placeholder.
	PreviewURL     string
	ReleasePreview func()

	// Anchor is the paste point; the photo is centered on it.
	Anchor Point
}

// UploadPhoto runs the optimistic temp-item flow: placeholder in,
// upload, create, atomic replace. On failure the placeholder stays,
// marked as failed, so the user keeps visual context.
func (c *SyncController) UploadPhoto(up PhotoUpload) (*models.BoardItem, error) {
	width, height := DefaultSize(models.ItemTypePhoto)
	x, y := PlacementFor(models.ItemTypePhoto, up.Anchor)

	tempId := uuid.New()
	now := time.Now()
	temp := models.BoardItem{
		ID:        tempId,
		BoardID:   c.boardId,
		Type:      models.ItemTypePhoto,
		Content:   models.PhotoContentFor(up.PreviewURL),
		PositionX: x,
		PositionY: y,
		Width:     width,
		Height:    height,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.flags.Set(tempId, UploadState{Uploading: true, PreviewURL: up.PreviewURL})
	c.scene.HoldRefresh()
	c.scene.Upsert(temp)
	c.notify()

	url, err := c.uploader.UploadBoardImage(up.FileName, up.Reader, up.Size, up.ContentType)
	if err != nil {
		return nil, c.failUpload(tempId, "uploading image", err)
	}

	real, err := c.store.CreateItem(c.boardId, &models.CreateBoardItemRequestBody{
		Type:      models.ItemTypePhoto,
		Content:   models.PhotoContentFor(url),
		PositionX: x,
		PositionY: y,
		Width:     width,
		Height:    height,
	})
	if err != nil {
		return nil, c.failUpload(tempId, "creating photo item", err)
	}

	c.scene.ReplaceTemp(tempId, *real)
	c.flags.Clear(tempId)
	if up.ReleasePreview != nil {
		up.ReleasePreview()
	}
	c.scene.ReleaseRefresh()
	c.notify()
	return real, nil
}

func (c *SyncController) failUpload(tempId uuid.UUID, op string, err error) error {
	log.Printf("Error %s for temp item %s: %v", op, tempId, err)
	state, _ := c.flags.Get(tempId)
	state.Uploading = false
	state.Error = true
	c.flags.Set(tempId, state)
	c.scene.ReleaseRefresh()
	c.notify()
	return err
}
