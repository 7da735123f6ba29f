package validators

import (
	"strings"

	"moodboard/internal/enums"
	"moodboard/internal/errs"
	"moodboard/internal/models"
)

// ValidateContent checks that content matches the schema for the given
// item type before it is persisted. Pure, no side effects.
func ValidateContent(t models.ItemType, content models.ItemContent) error {
	if !t.Valid() {
		return errs.ErrUnknownItemType
	}
	if content == nil {
		return errs.ErrInvalidItemContent
	}

	decoded, err := models.DecodeContent(t, content)
	if err != nil {
		return err
	}

	switch c := decoded.(type) {
	case *models.PhotoContent:
		if c.URL == "" {
			return errs.ErrInvalidItemContent
		}
	case *models.TextContent:
		if _, ok := content["text"]; !ok {
			return errs.ErrInvalidItemContent
		}
		if c.FontSize <= 0 {
			return errs.ErrInvalidItemContent
		}
	case *models.LinkContent:
		if c.URL == "" || c.Title == "" {
			return errs.ErrInvalidItemContent
		}
	case *models.IconContent:
		if !strings.Contains(c.Icon, ":") {
			return errs.ErrInvalidItemContent
		}
	case *models.ShapeContent:
		if c.ShapeType != "rect" && c.ShapeType != "circle" {
			return errs.ErrInvalidItemContent
		}
	case *models.LineContent:
		if err := validatePoints(c.Points); err != nil {
			return err
		}
	case *models.ArrowContent:
		if err := validatePoints(c.Points); err != nil {
			return err
		}
	case *models.SubboardContent:
		if c.BoardId == "" {
			return errs.ErrInvalidItemContent
		}
	}
	return nil
}

func validatePoints(points []float64) error {
	if len(points) < 4 || len(points)%2 != 0 {
		return errs.ErrInvalidItemContent
	}
	return nil
}

// ValidateGeometry rejects degenerate boxes at creation time. The
// 5-unit minimum applies to transforms, not creation; lines and arrows
// legitimately start at height 2.
func ValidateGeometry(width, height float64) error {
	if width <= 0 || height <= 0 {
		return errs.ErrInvalidGeometry
	}
	return nil
}

// ValidateBackground checks board appearance updates. An empty
// wallpaper string clears the pattern and is always allowed.
func ValidateBackground(body *models.UpdateBoardRequestBody) []error {
	var errors []error
	if body.BackgroundTransparency != nil {
		if *body.BackgroundTransparency < 0 || *body.BackgroundTransparency > 1 {
			errors = append(errors, errs.ErrInvalidTransparency)
		}
	}
	if body.BackgroundWallpaper != nil && *body.BackgroundWallpaper != "" {
		if !enums.IsValidWallpaper(*body.BackgroundWallpaper) {
			errors = append(errors, errs.ErrInvalidWallpaper)
		}
	}
	return errors
}
