package canvas

import (
	"sync"

	"github.com/google/uuid"

	"moodboard/internal/models"
)

// UploadState is client-only item state. It lives beside the scene,
// keyed by item id, and is merged into content at render time only. It
// is never serialized to the store.
type UploadState struct {
	Uploading  bool
	Error      bool
	PreviewURL string
}

type TransientFlags struct {
	mu     sync.Mutex
	states map[uuid.UUID]UploadState
}

func NewTransientFlags() *TransientFlags {
	return &TransientFlags{
		states: make(map[uuid.UUID]UploadState),
	}
}

func (tf *TransientFlags) Set(itemId uuid.UUID, state UploadState) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.states[itemId] = state
}

func (tf *TransientFlags) Get(itemId uuid.UUID) (UploadState, bool) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	state, ok := tf.states[itemId]
	return state, ok
}

func (tf *TransientFlags) Clear(itemId uuid.UUID) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	delete(tf.states, itemId)
}

// Decorate overlays the transient flags onto a copy of the item's
// content for rendering.
func (tf *TransientFlags) Decorate(item models.BoardItem) models.BoardItem {
	state, ok := tf.Get(item.ID)
	if !ok {
		return item
	}

	content := make(models.ItemContent, len(item.Content)+2)
	for k, v := range item.Content {
		content[k] = v
	}
	if state.Uploading {
		content["isUploading"] = true
	}
	if state.Error {
		content["error"] = true
	}
	if state.PreviewURL != "" {
		if url, _ := content.String("url"); url == "" {
			content["url"] = state.PreviewURL
		}
	}
	item.Content = content
	return item
}
