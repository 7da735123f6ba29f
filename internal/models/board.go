package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Board struct {
	ID                     uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title                  string      `json:"title" gorm:"not null"`
	Description            *string     `json:"description"`
	Icon                   *string     `json:"icon"`
	Position               int         `json:"position" gorm:"not null;default:0"`
	BackgroundColor        string      `json:"background_color" gorm:"not null;default:'#ffffff'"`
	BackgroundTransparency float64     `json:"background_transparency" gorm:"not null;default:1"`
	BackgroundWallpaper    *string     `json:"background_wallpaper"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
	Items                  []BoardItem `json:"-" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type CreateBoardRequestBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type UpdateBoardRequestBody struct {
	Title                  *string  `json:"title"`
	Description            *string  `json:"description"`
	Icon                   *string  `json:"icon"`
	BackgroundColor        *string  `json:"background_color"`
	BackgroundTransparency *float64 `json:"background_transparency"`
	// An empty string clears the wallpaper back to none.
	BackgroundWallpaper *string `json:"background_wallpaper"`
}

func (ub *UpdateBoardRequestBody) HasUpdates() bool {
	return ub.Title != nil ||
		ub.Description != nil ||
		ub.Icon != nil ||
		ub.BackgroundColor != nil ||
		ub.BackgroundTransparency != nil ||
		ub.BackgroundWallpaper != nil
}

type ReorderBoardsRequestBody struct {
	BoardIds []uuid.UUID `json:"boardIds"`
}
