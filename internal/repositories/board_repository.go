package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodboard/internal/errs"
	"moodboard/internal/models"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (br *BoardRepository) CreateBoard(body *models.CreateBoardRequestBody) (*models.Board, error) {
	board := models.Board{
		Title:                  body.Title,
		Description:            body.Description,
		Icon:                   body.Icon,
		BackgroundColor:        "#ffffff",
		BackgroundTransparency: 1,
	}

	err := br.db.Transaction(func(tx *gorm.DB) error {
		// Append at the end of the board list
		var maxPosition int
		if err := tx.Model(&models.Board{}).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		board.Position = maxPosition + 1

		return tx.Create(&board).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (br *BoardRepository) FindAllBoards() ([]models.Board, error) {
	var boards []models.Board
	result := br.db.Order("position ASC, created_at ASC").Find(&boards)
	if err := result.Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (br *BoardRepository) FindBoardById(boardId uuid.UUID) (*models.Board, error) {
	var board models.Board
	result := br.db.Where("id = ?", boardId).First(&board)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (br *BoardRepository) UpdateBoard(boardId uuid.UUID, body *models.UpdateBoardRequestBody) (*models.Board, error) {
	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Icon != nil {
		updates["icon"] = *body.Icon
	}
	if body.BackgroundColor != nil {
		updates["background_color"] = *body.BackgroundColor
	}
	if body.BackgroundTransparency != nil {
		updates["background_transparency"] = *body.BackgroundTransparency
	}
	if body.BackgroundWallpaper != nil {
		if *body.BackgroundWallpaper == "" {
			updates["background_wallpaper"] = nil
		} else {
			updates["background_wallpaper"] = *body.BackgroundWallpaper
		}
	}
	if len(updates) == 0 {
		return nil, errs.ErrNoUpdates
	}

	result := br.db.Model(&models.Board{}).Where("id = ?", boardId).Updates(updates)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrBoardNotFound
	}
	return br.FindBoardById(boardId)
}

func (br *BoardRepository) DeleteBoard(boardId uuid.UUID) error {
	return br.db.Transaction(func(tx *gorm.DB) error {
		// Items are owned by the board and go with it. Subboard items on
		// other boards keep their reference; dangling is a valid state.
		if err := tx.Where("board_id = ?", boardId).Delete(&models.BoardItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", boardId).Delete(&models.Board{})
		if err := result.Error; err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return errs.ErrBoardNotFound
		}
		return nil
	})
}

func (br *BoardRepository) ReorderBoards(boardIds []uuid.UUID) error {
	assignments := reorderAssignments(boardIds)
	return br.db.Transaction(func(tx *gorm.DB) error {
		for boardId, position := range assignments {
			if err := tx.Model(&models.Board{}).
				Where("id = ?", boardId).
				Update("position", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// reorderAssignments maps board id to its new position, position = index.
// Duplicate ids keep the first index so the assignment stays idempotent.
func reorderAssignments(boardIds []uuid.UUID) map[uuid.UUID]int {
	assignments := make(map[uuid.UUID]int, len(boardIds))
	for index, boardId := range boardIds {
		if _, seen := assignments[boardId]; seen {
			continue
		}
		assignments[boardId] = index
	}
	return assignments
}
