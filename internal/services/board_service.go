package services

import (
	"strings"

	"github.com/google/uuid"

	"moodboard/internal/errs"
	"moodboard/internal/models"
	"moodboard/internal/repositories"
	"moodboard/internal/validators"
)

type BoardService struct {
	boardRepo *repositories.BoardRepository
}

func NewBoardService(boardRepo *repositories.BoardRepository) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
	}
}

func (bs *BoardService) CreateBoard(body *models.CreateBoardRequestBody) (*models.Board, []error) {
	if strings.TrimSpace(body.Title) == "" {
		return nil, []error{errs.ErrTitleRequired}
	}
	board, err := bs.boardRepo.CreateBoard(body)
	if err != nil {
		return nil, []error{err}
	}
	return board, nil
}

func (bs *BoardService) GetAllBoards() ([]models.Board, error) {
	return bs.boardRepo.FindAllBoards()
}

func (bs *BoardService) GetBoard(boardId uuid.UUID) (*models.Board, error) {
	return bs.boardRepo.FindBoardById(boardId)
}

func (bs *BoardService) UpdateBoard(boardId uuid.UUID, body *models.UpdateBoardRequestBody) (*models.Board, []error) {
	if !body.HasUpdates() {
		return nil, []error{errs.ErrNoUpdates}
	}
	if validationErrs := validators.ValidateBackground(body); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	board, err := bs.boardRepo.UpdateBoard(boardId, body)
	if err != nil {
		return nil, []error{err}
	}
	return board, nil
}

func (bs *BoardService) DeleteBoard(boardId uuid.UUID) error {
	return bs.boardRepo.DeleteBoard(boardId)
}

func (bs *BoardService) ReorderBoards(body *models.ReorderBoardsRequestBody) error {
	if len(body.BoardIds) == 0 {
		return errs.ErrNoUpdates
	}
	return bs.boardRepo.ReorderBoards(body.BoardIds)
}
