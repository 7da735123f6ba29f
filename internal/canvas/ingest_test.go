package canvas

import (
	"bytes"
	"testing"
	"time"

	"moodboard/internal/errs"
	"moodboard/internal/models"
)

type fakePreviews struct {
	preview *models.LinkPreview
	err     error
	calls   []string
}

func (fp *fakePreviews) FetchPreview(url string) (*models.LinkPreview, error) {
	fp.calls = append(fp.calls, url)
	if fp.err != nil {
		return nil, fp.err
	}
	return fp.preview, nil
}

func TestClassifyPriority(t *testing.T) {
	imageFile := PastedFile{Name: "a.png", ContentType: "image/png"}
	textFile := PastedFile{Name: "a.txt", ContentType: "text/plain"}
	clipboardImage := PastedFile{ContentType: "image/jpeg"}

	tests := []struct {
		name  string
		event PasteEvent
		want  PasteAction
	}{
		{"image file wins over url text", PasteEvent{Files: []PastedFile{imageFile}, Text: "https://example.com"}, PastePhoto},
		{"clipboard image wins over url text", PasteEvent{Items: []PastedFile{clipboardImage}, Text: "https://example.com"}, PastePhoto},
		{"file list beats clipboard items", PasteEvent{Files: []PastedFile{imageFile}, Items: []PastedFile{clipboardImage}}, PastePhoto},
		{"non-image file is skipped", PasteEvent{Files: []PastedFile{textFile}, Text: "https://example.com"}, PasteLink},
		{"http url", PasteEvent{Text: "http://example.com"}, PasteLink},
		{"https url with whitespace", PasteEvent{Text: "  https://example.com  "}, PasteLink},
		{"plain text is ignored", PasteEvent{Text: "hello world"}, PasteNone},
		{"relative url is ignored", PasteEvent{Text: "/some/path"}, PasteNone},
		{"empty paste", PasteEvent{}, PasteNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _, _ := Classify(tt.event)
			if action != tt.want {
				t.Errorf("got %v, want %v", action, tt.want)
			}
		})
	}
}

func TestPasteLinkUsesPreviewMetadata(t *testing.T) {
	store := newFakeStore()
	controller, _, _ := newTestController(store, &fakeUploader{}, 30*time.Millisecond)
	previews := &fakePreviews{preview: &models.LinkPreview{
		URL:         "https://example.com",
		Title:       "Example Domain",
		Description: "Illustrative examples",
		Image:       "https://example.com/og.png",
	}}
	ing := NewIngestor(controller, previews, nil)

	item, err := ing.PasteLink("https://example.com", Point{X: 400, Y: 300})
	if err != nil {
		t.Fatal(err)
	}

	if title, _ := item.Content.String("title"); title != "Example Domain" {
		t.Errorf("expected preview title, got %q", title)
	}
	// Link items are 300x200, centered on the anchor.
	if item.PositionX != 250 || item.PositionY != 200 {
		t.Errorf("expected link at (250,200), got (%v,%v)", item.PositionX, item.PositionY)
	}
}

func TestPasteLinkFallsBackToRawURL(t *testing.T) {
	store := newFakeStore()
	controller, _, _ := newTestController(store, &fakeUploader{}, 30*time.Millisecond)
	previews := &fakePreviews{err: errs.ErrLinkFetchFailed}
	ing := NewIngestor(controller, previews, nil)

	item, err := ing.PasteLink("https://unreachable.example.com", Point{})
	if err != nil {
		t.Fatal("an unreachable page still yields a link item")
	}
	if title, _ := item.Content.String("title"); title != "https://unreachable.example.com" {
		t.Errorf("title must fall back to the url, got %q", title)
	}
}

func TestHandlePasteAnchorsOnPointer(t *testing.T) {
	store := newFakeStore()
	controller, _, _ := newTestController(store, &fakeUploader{url: "https://cdn.example.com/p.png"}, 30*time.Millisecond)
	ing := NewIngestor(controller, &fakePreviews{}, func() Point { return Point{X: 500, Y: 500} })

	item, err := ing.HandlePaste(PasteEvent{
		Files: []PastedFile{{
			Name:        "p.png",
			ContentType: "image/png",
			Size:        4,
			Data:        bytes.NewReader([]byte("data")),
		}},
		Pointer: &Point{X: 300, Y: 300},
	})
	if err != nil {
		t.Fatal(err)
	}
	// 200x200 photo centered on the pointer, not the viewport center.
	if item.PositionX != 200 || item.PositionY != 200 {
		t.Errorf("expected (200,200), got (%v,%v)", item.PositionX, item.PositionY)
	}
}

func TestHandlePasteFallsBackToViewportCenter(t *testing.T) {
	store := newFakeStore()
	controller, _, _ := newTestController(store, &fakeUploader{url: "https://cdn.example.com/p.png"}, 30*time.Millisecond)
	ing := NewIngestor(controller, &fakePreviews{}, func() Point { return Point{X: 500, Y: 400} })

	item, err := ing.HandlePaste(PasteEvent{
		Files: []PastedFile{{
			Name:        "p.png",
			ContentType: "image/png",
			Size:        4,
			Data:        bytes.NewReader([]byte("data")),
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if item.PositionX != 400 || item.PositionY != 300 {
		t.Errorf("expected (400,300), got (%v,%v)", item.PositionX, item.PositionY)
	}
}

func TestHandlePasteNothingRecognized(t *testing.T) {
	store := newFakeStore()
	controller, scene, _ := newTestController(store, &fakeUploader{}, 30*time.Millisecond)
	ing := NewIngestor(controller, &fakePreviews{}, nil)

	item, err := ing.HandlePaste(PasteEvent{Text: "just some words"})
	if err != nil {
		t.Fatal("unrecognized paste is not an error")
	}
	if item != nil || scene.Len() != 0 {
		t.Error("unrecognized paste must create nothing")
	}
}

func TestPlacementFor(t *testing.T) {
	// Text hangs off the anchor top-left; everything else is centered.
	if x, y := PlacementFor(models.ItemTypeText, Point{X: 50, Y: 60}); x != 50 || y != 60 {
		t.Errorf("text placement got (%v,%v)", x, y)
	}
	if x, y := PlacementFor(models.ItemTypeShape, Point{X: 50, Y: 60}); x != 0 || y != 10 {
		t.Errorf("shape placement got (%v,%v)", x, y)
	}
}
