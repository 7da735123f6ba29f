package canvas

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"moodboard/internal/models"
)

func itemAt(z int, createdAt time.Time) models.BoardItem {
	return models.BoardItem{
		ID:        uuid.New(),
		Type:      models.ItemTypeShape,
		ZIndex:    z,
		CreatedAt: createdAt,
	}
}

func TestSnapshotPaintOrder(t *testing.T) {
	base := time.Now()
	older := itemAt(1, base)
	newer := itemAt(1, base.Add(time.Second))
	top := itemAt(5, base)
	bottom := itemAt(0, base.Add(time.Minute))

	scene := NewScene()
	// Insertion order deliberately scrambled.
	scene.Upsert(top)
	scene.Upsert(newer)
	scene.Upsert(bottom)
	scene.Upsert(older)

	got := scene.Snapshot()
	want := []uuid.UUID{bottom.ID, older.ID, newer.ID, top.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("paint order wrong at %d: got %v, want %v", i, got[i].ID, id)
		}
	}
}

func TestReplaceTempIsAtomic(t *testing.T) {
	scene := NewScene()
	tempId := uuid.New()
	scene.Upsert(models.BoardItem{ID: tempId, Type: models.ItemTypePhoto})

	real := models.BoardItem{ID: uuid.New(), Type: models.ItemTypePhoto}
	// A refresh may have already delivered the real item.
	scene.Upsert(real)

	scene.ReplaceTemp(tempId, real)

	if scene.Len() != 1 {
		t.Fatalf("expected exactly one item after replace, got %d", scene.Len())
	}
	if scene.Contains(tempId) {
		t.Error("temp item must be gone after replace")
	}
	if !scene.Contains(real.ID) {
		t.Error("real item must be present after replace")
	}
}

func TestReplaceAllBlockedWhileHeld(t *testing.T) {
	scene := NewScene()
	temp := models.BoardItem{ID: uuid.New(), Type: models.ItemTypePhoto}
	scene.HoldRefresh()
	scene.Upsert(temp)

	// A list fetched before the temp item was created.
	if scene.ReplaceAll([]models.BoardItem{}) {
		t.Fatal("refresh must be discarded while a hold is open")
	}
	if !scene.Contains(temp.ID) {
		t.Fatal("temp item lost to a stale refresh")
	}

	scene.ReleaseRefresh()
	if !scene.ReplaceAll([]models.BoardItem{}) {
		t.Fatal("refresh must land once the hold is released")
	}
}

func TestUpsertIfPresentNeverReinstates(t *testing.T) {
	scene := NewScene()
	item := models.BoardItem{ID: uuid.New(), Type: models.ItemTypeShape, PositionX: 10}
	scene.Upsert(item)

	item.PositionX = 50
	if !scene.UpsertIfPresent(item) {
		t.Fatal("present item must be replaced")
	}
	if got, _ := scene.Get(item.ID); got.PositionX != 50 {
		t.Errorf("replacement not applied, got %v", got.PositionX)
	}

	scene.RemoveById(item.ID)
	if scene.UpsertIfPresent(item) {
		t.Fatal("a removed item must stay removed")
	}
	if scene.Len() != 0 {
		t.Fatalf("expected empty scene, got %d items", scene.Len())
	}
}

func TestPatchMergesByPresence(t *testing.T) {
	scene := NewScene()
	item := models.BoardItem{
		ID:        uuid.New(),
		Type:      models.ItemTypeShape,
		PositionX: 10,
		PositionY: 20,
		Width:     100,
		Height:    50,
		Rotation:  15,
	}
	scene.Upsert(item)

	x := 99.0
	if !scene.Patch(item.ID, &models.UpdateBoardItemRequestBody{PositionX: &x}) {
		t.Fatal("patch of a present item must apply")
	}

	got, _ := scene.Get(item.ID)
	if got.PositionX != 99 {
		t.Errorf("position_x not patched: %v", got.PositionX)
	}
	if got.PositionY != 20 || got.Width != 100 || got.Height != 50 || got.Rotation != 15 {
		t.Error("absent fields must keep their values")
	}

	if scene.Patch(uuid.New(), &models.UpdateBoardItemRequestBody{PositionX: &x}) {
		t.Error("patch of a missing item must report false")
	}
}
