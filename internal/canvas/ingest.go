package canvas

import (
	"errors"
	"io"
	"log"
	"strings"

	"moodboard/internal/errs"
	"moodboard/internal/interfaces"
	"moodboard/internal/models"
)

// DefaultSize returns the canvas footprint a freshly created item of
// the given type starts with.
func DefaultSize(t models.ItemType) (width, height float64) {
	switch t {
	case models.ItemTypePhoto:
		return 200, 200
	case models.ItemTypeText:
		return 200, 50
	case models.ItemTypeLink:
		return 300, 200
	case models.ItemTypeIcon:
		return 50, 50
	case models.ItemTypeShape:
		return 100, 100
	case models.ItemTypeLine, models.ItemTypeArrow:
		return 200, 2
	case models.ItemTypeSubboard:
		return 200, 150
	}
	return 100, 100
}

// PlacementFor converts an anchor point into the item's top-left
// corner. Everything is centered on the anchor except text, which
// hangs off it top-left.
func PlacementFor(t models.ItemType, anchor Point) (x, y float64) {
	if t == models.ItemTypeText {
		return anchor.X, anchor.Y
	}
	width, height := DefaultSize(t)
	return anchor.X - width/2, anchor.Y - height/2
}

// PastedFile is a file carried by a paste or drop event, or an entry of
// the clipboard items list.
type PastedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

// PasteEvent is the raw input of a paste/drop/file-pick gesture.
type PasteEvent struct {
	Files   []PastedFile
	Items   []PastedFile
	Text    string
	Pointer *Point
}

type PasteAction int

const (
	PasteNone PasteAction = iota
	PastePhoto
	PasteLink
)

// Classify picks what a paste event means, in priority order: an image
// file, then an image clipboard entry, then an absolute http(s) URL.
func Classify(event PasteEvent) (PasteAction, *PastedFile, string) {
	for i := range event.Files {
		if strings.HasPrefix(event.Files[i].ContentType, "image/") {
			return PastePhoto, &event.Files[i], ""
		}
	}
	for i := range event.Items {
		if strings.Contains(event.Items[i].ContentType, "image") {
			return PastePhoto, &event.Items[i], ""
		}
	}
	text := strings.TrimSpace(event.Text)
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return PasteLink, nil, text
	}
	return PasteNone, nil, ""
}

// Ingestor routes paste input into the photo upload flow or the
// link-preview flow.
type Ingestor struct {
	sync     *SyncController
	previews interfaces.PreviewFetcher

	// viewportCenter supplies the fallback anchor when the event
	// carries no pointer position.
	viewportCenter func() Point
}

func NewIngestor(sync *SyncController, previews interfaces.PreviewFetcher, viewportCenter func() Point) *Ingestor {
	if viewportCenter == nil {
		viewportCenter = func() Point { return Point{} }
	}
	return &Ingestor{
		sync:           sync,
		previews:       previews,
		viewportCenter: viewportCenter,
	}
}

func (ing *Ingestor) anchorFor(event PasteEvent) Point {
	if event.Pointer != nil {
		return *event.Pointer
	}
	return ing.viewportCenter()
}

// HandlePaste interprets the event and creates the resulting item.
// A paste that matches nothing is not an error.
func (ing *Ingestor) HandlePaste(event PasteEvent) (*models.BoardItem, error) {
	anchor := ing.anchorFor(event)

	action, file, url := Classify(event)
	switch action {
	case PastePhoto:
		return ing.sync.UploadPhoto(PhotoUpload{
			FileName:    file.Name,
			Reader:      file.Data,
			Size:        file.Size,
			ContentType: file.ContentType,
			Anchor:      anchor,
		})
	case PasteLink:
		return ing.PasteLink(url, anchor)
	}
	return nil, nil
}

// PasteLink fetches page metadata and creates a link item centered on
// the anchor. Preview fields are best effort: an unreachable page still
// yields a link item titled with the raw URL.
func (ing *Ingestor) PasteLink(url string, anchor Point) (*models.BoardItem, error) {
	preview, err := ing.previews.FetchPreview(url)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidURL) {
			return nil, err
		}
		log.Printf("Error fetching preview for %s: %v", url, err)
		preview = nil
	}

	width, height := DefaultSize(models.ItemTypeLink)
	x, y := PlacementFor(models.ItemTypeLink, anchor)
	return ing.sync.CreateItem(&models.CreateBoardItemRequestBody{
		Type:      models.ItemTypeLink,
		Content:   models.LinkContentFor(url, preview),
		PositionX: x,
		PositionY: y,
		Width:     width,
		Height:    height,
	})
}
