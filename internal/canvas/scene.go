package canvas

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"moodboard/internal/models"
)

// Scene is the local item list a session renders from. Every mutation
// is a single critical section, so observers never see an intermediate
// state.
type Scene struct {
	mu           sync.Mutex
	items        []models.BoardItem
	refreshHolds int
}

func NewScene() *Scene {
	return &Scene{}
}

func (sc *Scene) Upsert(item models.BoardItem) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i := range sc.items {
		if sc.items[i].ID == item.ID {
			sc.items[i] = item
			return
		}
	}
	sc.items = append(sc.items, item)
}

func (sc *Scene) RemoveById(itemId uuid.UUID) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.removeLocked(itemId)
}

func (sc *Scene) removeLocked(itemId uuid.UUID) bool {
	for i := range sc.items {
		if sc.items[i].ID == itemId {
			sc.items = append(sc.items[:i], sc.items[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceTemp swaps an optimistic placeholder for the server-confirmed
// item in one atomic update: drop the temp, drop any duplicate of the
// real id, append the real item.
func (sc *Scene) ReplaceTemp(tempId uuid.UUID, real models.BoardItem) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.removeLocked(tempId)
	sc.removeLocked(real.ID)
	sc.items = append(sc.items, real)
}

// UpsertIfPresent replaces the stored copy only while the item is still
// in the scene, in one critical section, so a write that completes
// after a local delete cannot resurrect the item.
func (sc *Scene) UpsertIfPresent(item models.BoardItem) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i := range sc.items {
		if sc.items[i].ID == item.ID {
			sc.items[i] = item
			return true
		}
	}
	return false
}

func (sc *Scene) Get(itemId uuid.UUID) (models.BoardItem, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i := range sc.items {
		if sc.items[i].ID == itemId {
			return sc.items[i], true
		}
	}
	return models.BoardItem{}, false
}

func (sc *Scene) Contains(itemId uuid.UUID) bool {
	_, ok := sc.Get(itemId)
	return ok
}

// Patch merges an optimistic partial update into the local copy so the
// edit is visible before the store confirms it.
func (sc *Scene) Patch(itemId uuid.UUID, updates *models.UpdateBoardItemRequestBody) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i := range sc.items {
		if sc.items[i].ID != itemId {
			continue
		}
		item := &sc.items[i]
		if updates.PositionX != nil {
			item.PositionX = *updates.PositionX
		}
		if updates.PositionY != nil {
			item.PositionY = *updates.PositionY
		}
		if updates.Width != nil {
			item.Width = *updates.Width
		}
		if updates.Height != nil {
			item.Height = *updates.Height
		}
		if updates.Rotation != nil {
			item.Rotation = *updates.Rotation
		}
		if updates.ZIndex != nil {
			item.ZIndex = *updates.ZIndex
		}
		if updates.Content != nil {
			item.Content = updates.Content
		}
		return true
	}
	return false
}

// Snapshot returns the items in paint order.
func (sc *Scene) Snapshot() []models.BoardItem {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	items := make([]models.BoardItem, len(sc.items))
	copy(items, sc.items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ZIndex != items[j].ZIndex {
			return items[i].ZIndex < items[j].ZIndex
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (sc *Scene) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.items)
}

// HoldRefresh blocks remote list refreshes from landing while an
// optimistic temp item is installed.
func (sc *Scene) HoldRefresh() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.refreshHolds++
}

func (sc *Scene) ReleaseRefresh() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.refreshHolds > 0 {
		sc.refreshHolds--
	}
}

// ReplaceAll installs a fresh remote item list. Stale refreshes that
// arrive while a hold is open are discarded.
func (sc *Scene) ReplaceAll(items []models.BoardItem) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.refreshHolds > 0 {
		return false
	}
	sc.items = make([]models.BoardItem, len(items))
	copy(sc.items, items)
	return true
}
