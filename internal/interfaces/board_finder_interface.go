package interfaces

import (
	"github.com/google/uuid"

	"moodboard/internal/models"
)

// BoardFinder checks board existence before a socket session starts.
type BoardFinder interface {
	GetBoard(boardId uuid.UUID) (*models.Board, error)
}
