package models

import (
	"encoding/json"

	"moodboard/internal/errs"
)

// Per-type content schemas. An item's content shape is determined
// solely by its type; DecodeContent is the one place that mapping lives.

type PhotoContent struct {
	URL          string  `json:"url"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`
}

type TextContent struct {
	Text          string  `json:"text"`
	FontSize      float64 `json:"fontSize"`
	FontFamily    string  `json:"fontFamily"`
	Color         string  `json:"color"`
	Bold          bool    `json:"bold"`
	Italic        bool    `json:"italic"`
	Underline     bool    `json:"underline"`
	Strikethrough bool    `json:"strikethrough"`
	Align         string  `json:"align,omitempty"`
	VerticalAlign string  `json:"verticalAlign,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
}

type LinkContent struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type IconContent struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ShapeContent struct {
	ShapeType    string  `json:"shapeType"`
	Fill         string  `json:"fill"`
	Stroke       string  `json:"stroke"`
	StrokeWidth  float64 `json:"strokeWidth"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`
}

type LineContent struct {
	Points      []float64 `json:"points"`
	Stroke      string    `json:"stroke"`
	StrokeWidth float64   `json:"strokeWidth"`
}

type ArrowContent struct {
	Points        []float64 `json:"points"`
	Stroke        string    `json:"stroke"`
	Fill          string    `json:"fill"`
	StrokeWidth   float64   `json:"strokeWidth"`
	PointerLength float64   `json:"pointerLength"`
	PointerWidth  float64   `json:"pointerWidth"`
}

type SubboardContent struct {
	BoardId string `json:"boardId"`
	Title   string `json:"title"`
}

// DecodeContent maps raw content onto the schema struct for the given
// type. Unknown types are rejected here, nowhere else.
func DecodeContent(t ItemType, content ItemContent) (interface{}, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, errs.ErrInvalidItemContent
	}

	var target interface{}
	switch t {
	case ItemTypePhoto:
		target = &PhotoContent{}
	case ItemTypeText:
		target = &TextContent{}
	case ItemTypeLink:
		target = &LinkContent{}
	case ItemTypeIcon:
		target = &IconContent{}
	case ItemTypeShape:
		target = &ShapeContent{}
	case ItemTypeLine:
		target = &LineContent{}
	case ItemTypeArrow:
		target = &ArrowContent{}
	case ItemTypeSubboard:
		target = &SubboardContent{}
	default:
		return nil, errs.ErrUnknownItemType
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return nil, errs.ErrInvalidItemContent
	}
	return target, nil
}

func toContent(v interface{}) ItemContent {
	raw, err := json.Marshal(v)
	if err != nil {
		return ItemContent{}
	}
	var c ItemContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return ItemContent{}
	}
	return c
}

// Toolbar defaults for newly created items.

func DefaultTextContent() ItemContent {
	return toContent(TextContent{
		Text:       "Double click to edit",
		FontSize:   16,
		FontFamily: "Arial",
		Color:      "#000000",
	})
}

func DefaultShapeContent(shapeType string) ItemContent {
	return toContent(ShapeContent{
		ShapeType: shapeType,
		Fill:      "#3b82f6",
		Stroke:    "#000000",
	})
}

func DefaultIconContent(icon string) ItemContent {
	return toContent(IconContent{Icon: icon, Color: "#3b82f6"})
}

func DefaultLineContent() ItemContent {
	return toContent(LineContent{
		Points:      []float64{0, 0, 200, 0},
		Stroke:      "#000000",
		StrokeWidth: 2,
	})
}

func DefaultArrowContent() ItemContent {
	return toContent(ArrowContent{
		Points:        []float64{0, 0, 200, 0},
		Stroke:        "#000000",
		Fill:          "#000000",
		StrokeWidth:   2,
		PointerLength: 10,
		PointerWidth:  10,
	})
}

func DefaultSubboardContent(boardId string) ItemContent {
	return toContent(SubboardContent{BoardId: boardId, Title: "Sub-board"})
}

func PhotoContentFor(url string) ItemContent {
	return toContent(PhotoContent{URL: url})
}

func LinkContentFor(url string, preview *LinkPreview) ItemContent {
	link := LinkContent{URL: url, Title: url}
	if preview != nil {
		if preview.Title != "" {
			link.Title = preview.Title
		}
		link.Description = preview.Description
		link.Image = preview.Image
	}
	return toContent(link)
}
