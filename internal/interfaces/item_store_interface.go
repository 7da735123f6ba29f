package interfaces

import (
	"github.com/google/uuid"

	"moodboard/internal/models"
)

// ItemStore is the remote store a canvas session syncs against.
// The board item service is the production implementation.
type ItemStore interface {
	ListItems(boardId uuid.UUID) ([]models.BoardItem, error)
	CreateItem(boardId uuid.UUID, body *models.CreateBoardItemRequestBody) (*models.BoardItem, error)
	UpdateItem(boardId, itemId uuid.UUID, updates *models.UpdateBoardItemRequestBody) (*models.BoardItem, error)
	DeleteItem(boardId, itemId uuid.UUID) error
}
