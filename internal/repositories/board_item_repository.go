package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodboard/internal/errs"
	"moodboard/internal/models"
)

type BoardItemRepository struct {
	db *gorm.DB
}

func NewBoardItemRepository(db *gorm.DB) *BoardItemRepository {
	return &BoardItemRepository{
		db: db,
	}
}

func (bir *BoardItemRepository) CreateItem(boardId uuid.UUID, body *models.CreateBoardItemRequestBody) (*models.BoardItem, error) {
	var count int64
	if err := bir.db.Model(&models.Board{}).Where("id = ?", boardId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.ErrBoardNotFound
	}

	item := models.BoardItem{
		BoardID:   boardId,
		Type:      body.Type,
		Content:   body.Content,
		PositionX: body.PositionX,
		PositionY: body.PositionY,
		Width:     body.Width,
		Height:    body.Height,
		Rotation:  body.Rotation,
		ZIndex:    body.ZIndex,
	}

	result := bir.db.Create(&item)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrItemCreationFailed
	}
	return &item, nil
}

// FindBoardItems returns a board's items in paint order.
func (bir *BoardItemRepository) FindBoardItems(boardId uuid.UUID) ([]models.BoardItem, error) {
	var items []models.BoardItem
	result := bir.db.
		Where("board_id = ?", boardId).
		Order("z_index ASC, created_at ASC").
		Find(&items)
	if err := result.Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (bir *BoardItemRepository) FindItemById(boardId, itemId uuid.UUID) (*models.BoardItem, error) {
	var item models.BoardItem
	result := bir.db.Where("id = ? AND board_id = ?", itemId, boardId).First(&item)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a partial patch; absent fields are left untouched.
func (bir *BoardItemRepository) UpdateItem(boardId, itemId uuid.UUID, updates map[string]interface{}) (*models.BoardItem, error) {
	if len(updates) == 0 {
		return nil, errs.ErrNoUpdates
	}

	result := bir.db.Model(&models.BoardItem{}).
		Where("id = ? AND board_id = ?", itemId, boardId).
		Updates(updates)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrItemNotFound
	}
	return bir.FindItemById(boardId, itemId)
}

func (bir *BoardItemRepository) DeleteItem(boardId, itemId uuid.UUID) error {
	result := bir.db.Where("id = ? AND board_id = ?", itemId, boardId).Delete(&models.BoardItem{})
	if err := result.Error; err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return errs.ErrItemNotFound
	}
	return nil
}
