package canvas

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"moodboard/internal/models"
)

func newTestSession(store *fakeStore, uploader Uploader) *Session {
	return NewSession(uuid.New(), store, uploader, &fakePreviews{}, 30*time.Millisecond)
}

func TestDoubleClickCreatesTextWithoutSelecting(t *testing.T) {
	session := newTestSession(newFakeStore(), &fakeUploader{})

	item, err := session.DoubleClickCanvas(120, 80)
	if err != nil {
		t.Fatal(err)
	}

	if item.Type != models.ItemTypeText {
		t.Fatalf("expected a text item, got %s", item.Type)
	}
	if item.PositionX != 120 || item.PositionY != 80 {
		t.Errorf("text starts at the click point, got (%v,%v)", item.PositionX, item.PositionY)
	}
	if text, _ := item.Content.String("text"); text != "Double click to edit" {
		t.Errorf("unexpected default text %q", text)
	}
	if session.Selection.State() != StateIdle {
		t.Error("new text item must not be auto-selected")
	}
}

func TestTransformEndGoesOutAsOnePatch(t *testing.T) {
	store := newFakeStore()
	session := newTestSession(store, &fakeUploader{})

	item, _ := session.AddShape("rect")
	session.TransformEnd(item.ID, NodeState{
		X: 10, Y: 10, Width: 100, Height: 100, Rotation: 90, ScaleX: 3, ScaleY: 3,
	})
	session.Close()

	calls := store.updateCalls()
	if len(calls) != 1 {
		t.Fatalf("expected one atomic patch, got %d", len(calls))
	}
	u := calls[0].updates
	if u.PositionX == nil || u.PositionY == nil || u.Width == nil || u.Height == nil || u.Rotation == nil {
		t.Fatal("transform patch must carry position, size and rotation together")
	}
	if *u.Width != 300 || *u.Height != 300 {
		t.Errorf("expected 300x300 after folding scale, got %vx%v", *u.Width, *u.Height)
	}
}

func TestKeyDeleteRemovesSelectedItem(t *testing.T) {
	store := newFakeStore()
	session := newTestSession(store, &fakeUploader{})

	item, _ := session.AddShape("circle")
	session.ClickItem(item.ID)

	if !session.KeyDelete(false) {
		t.Fatal("delete of a selected item must succeed")
	}
	if session.Scene.Contains(item.ID) {
		t.Error("item must leave the scene")
	}
	if _, ok := session.Selection.SelectedId(); ok {
		t.Error("selection must clear after delete")
	}
	// Pressing delete again is a no-op.
	if session.KeyDelete(false) {
		t.Error("nothing selected, nothing to delete")
	}
}

func TestKeyDeleteIgnoredWhileTyping(t *testing.T) {
	store := newFakeStore()
	session := newTestSession(store, &fakeUploader{})

	item, _ := session.AddText(Point{X: 0, Y: 0})
	session.ClickItem(item.ID)

	if session.KeyDelete(true) {
		t.Fatal("backspace in a focused editor must not delete the item")
	}
	if !session.Scene.Contains(item.ID) {
		t.Error("item must survive")
	}
}

func TestEditTextOnlyAppliesToTextItems(t *testing.T) {
	store := newFakeStore()
	session := newTestSession(store, &fakeUploader{})

	shape, _ := session.AddShape("rect")
	session.EditText(shape.ID, models.ItemContent{"text": "nope"})
	session.Close()

	if calls := store.updateCalls(); len(calls) != 0 {
		t.Fatalf("text edits on a non-text item must be ignored, got %d updates", len(calls))
	}
}

func TestPasteImageScenario(t *testing.T) {
	store := newFakeStore()
	uploader := &fakeUploader{url: "https://cdn.example.com/board-images/vacation.jpg"}
	session := newTestSession(store, uploader)
	session.SetViewport(1200, 800)

	item, err := session.Paste(PasteEvent{
		Files: []PastedFile{{
			Name:        "vacation.jpg",
			ContentType: "image/jpeg",
			Size:        2 << 20,
			Data:        bytes.NewReader(bytes.Repeat([]byte("x"), 64)),
		}},
		Pointer: &Point{X: 300, Y: 300},
	})
	if err != nil {
		t.Fatal(err)
	}

	if item.PositionX != 200 || item.PositionY != 200 {
		t.Errorf("200x200 photo centered on (300,300) lands at (200,200), got (%v,%v)", item.PositionX, item.PositionY)
	}

	items := session.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single item, got %d", len(items))
	}
	if _, ok := items[0].Content["isUploading"]; ok {
		t.Error("confirmed item must carry no transient flags")
	}
	if url, _ := items[0].Content.String("url"); url != uploader.url {
		t.Errorf("expected stored url, got %q", url)
	}
}

func TestItemsDecoratesUploadingPlaceholder(t *testing.T) {
	session := newTestSession(newFakeStore(), &fakeUploader{})

	tempId := uuid.New()
	session.Scene.Upsert(models.BoardItem{
		ID:      tempId,
		Type:    models.ItemTypePhoto,
		Content: models.PhotoContentFor(""),
	})
	session.flags.Set(tempId, UploadState{Uploading: true, PreviewURL: "blob:preview"})

	items := session.Items()
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if uploading, ok := items[0].Content["isUploading"].(bool); !ok || !uploading {
		t.Error("placeholder must render with isUploading")
	}
	if url, _ := items[0].Content.String("url"); url != "blob:preview" {
		t.Errorf("placeholder must render the preview url, got %q", url)
	}
	// Decoration is render-only; the scene copy stays clean.
	raw, _ := session.Scene.Get(tempId)
	if _, ok := raw.Content["isUploading"]; ok {
		t.Error("transient flags must never land in the scene content")
	}
}
