package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemType string

const (
	ItemTypePhoto    ItemType = "photo"
	ItemTypeText     ItemType = "text"
	ItemTypeLink     ItemType = "link"
	ItemTypeIcon     ItemType = "icon"
	ItemTypeShape    ItemType = "shape"
	ItemTypeLine     ItemType = "line"
	ItemTypeArrow    ItemType = "arrow"
	ItemTypeSubboard ItemType = "subboard"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypePhoto, ItemTypeText, ItemTypeLink, ItemTypeIcon,
		ItemTypeShape, ItemTypeLine, ItemTypeArrow, ItemTypeSubboard:
		return true
	}
	return false
}

type BoardItem struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID   `json:"board_id" gorm:"type:uuid;not null;index"`
	Type      ItemType    `json:"type" gorm:"not null"`
	Content   ItemContent `json:"content" gorm:"type:jsonb"`
	PositionX float64     `json:"position_x"`
	PositionY float64     `json:"position_y"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Rotation  float64     `json:"rotation"`
	ZIndex    int         `json:"z_index" gorm:"not null;default:0"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (bi *BoardItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

type CreateBoardItemRequestBody struct {
	Type      ItemType    `json:"type"`
	Content   ItemContent `json:"content"`
	PositionX float64     `json:"position_x"`
	PositionY float64     `json:"position_y"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Rotation  float64     `json:"rotation"`
	ZIndex    int         `json:"z_index"`
}

type UpdateBoardItemRequestBody struct {
	PositionX *float64    `json:"position_x"`
	PositionY *float64    `json:"position_y"`
	Width     *float64    `json:"width"`
	Height    *float64    `json:"height"`
	Rotation  *float64    `json:"rotation"`
	ZIndex    *int        `json:"z_index"`
	Content   ItemContent `json:"content"`
}

func (ub *UpdateBoardItemRequestBody) HasUpdates() bool {
	return ub.PositionX != nil ||
		ub.PositionY != nil ||
		ub.Width != nil ||
		ub.Height != nil ||
		ub.Rotation != nil ||
		ub.ZIndex != nil ||
		ub.Content != nil
}

// ToUpdatesMap keeps merge-by-presence semantics: absent fields
// never make it into the UPDATE statement.
func (ub *UpdateBoardItemRequestBody) ToUpdatesMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if ub.PositionX != nil {
		updates["position_x"] = *ub.PositionX
	}
	if ub.PositionY != nil {
		updates["position_y"] = *ub.PositionY
	}
	if ub.Width != nil {
		updates["width"] = *ub.Width
	}
	if ub.Height != nil {
		updates["height"] = *ub.Height
	}
	if ub.Rotation != nil {
		updates["rotation"] = *ub.Rotation
	}
	if ub.ZIndex != nil {
		updates["z_index"] = *ub.ZIndex
	}
	if ub.Content != nil {
		updates["content"] = ub.Content
	}
	return updates
}

type UpdateBoardItemEnvelope struct {
	ItemId  uuid.UUID                  `json:"itemId"`
	Updates UpdateBoardItemRequestBody `json:"updates"`
}

type DeleteBoardItemRequestBody struct {
	ItemId uuid.UUID `json:"itemId"`
}
