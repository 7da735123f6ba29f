package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moodboard/internal/errs"
	"moodboard/internal/models"
	"moodboard/internal/msgs"
	"moodboard/internal/services"
)

type RestHandler struct {
	boardService       *services.BoardService
	boardItemService   *services.BoardItemService
	fileManagerService *services.FileManagerService
	linkPreviewService *services.LinkPreviewService
}

func NewRestHandler(
	boardService *services.BoardService,
	boardItemService *services.BoardItemService,
	fileManagerService *services.FileManagerService,
	linkPreviewService *services.LinkPreviewService,
) *RestHandler {
	return &RestHandler{
		boardService:       boardService,
		boardItemService:   boardItemService,
		fileManagerService: fileManagerService,
		linkPreviewService: linkPreviewService,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrBoardNotFound), errors.Is(err, errs.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStorageNotConfigured),
		errors.Is(err, errs.ErrUploadFailed),
		errors.Is(err, errs.ErrLinkFetchFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (rh *RestHandler) abortWithErrors(ctx *gin.Context, status int, errors []error) {
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errors,
	})
}

func (rh *RestHandler) boardIdFromPath(ctx *gin.Context) (uuid.UUID, bool) {
	boardId, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidBoardId})
		return uuid.Nil, false
	}
	return boardId, true
}

// GetBoards godoc
// @Summary      List boards
// @Description  Boards ordered by position, then creation time
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /boards [get]
func (rh *RestHandler) GetBoards(ctx *gin.Context) {
	boards, err := rh.boardService.GetAllBoards()
	if err != nil {
		rh.abortWithErrors(ctx, http.StatusInternalServerError, []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    boards,
	})
}

// CreateBoard godoc
// @Summary      Create a board
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /boards [post]
func (rh *RestHandler) CreateBoard(ctx *gin.Context) {
	var body models.CreateBoardRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		log.Println("Error create board json binding:", err)
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	board, createErrs := rh.boardService.CreateBoard(&body)
	if len(createErrs) > 0 {
		rh.abortWithErrors(ctx, statusForError(createErrs[0]), createErrs)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgBoardCreatedSuccessfully,
		Data:    board,
	})
}

func (rh *RestHandler) GetBoard(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	board, err := rh.boardService.GetBoard(boardId)
	if err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    board,
	})
}

func (rh *RestHandler) UpdateBoard(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.UpdateBoardRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	board, updateErrs := rh.boardService.UpdateBoard(boardId, &body)
	if len(updateErrs) > 0 {
		rh.abortWithErrors(ctx, statusForError(updateErrs[0]), updateErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    board,
	})
}

func (rh *RestHandler) DeleteBoard(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	if err := rh.boardService.DeleteBoard(boardId); err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgBoardDeletedSuccessfully,
	})
}

// ReorderBoards assigns position = index for the given id order.
// Calling it twice with the same order is a no-op the second time.
func (rh *RestHandler) ReorderBoards(ctx *gin.Context) {
	var body models.ReorderBoardsRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	if err := rh.boardService.ReorderBoards(&body); err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgBoardsReorderedSuccessfuly,
	})
}

// GetBoardItems godoc
// @Summary      List board items
// @Description  Items in paint order: z_index asc, then created_at asc
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /boards/{id}/items [get]
func (rh *RestHandler) GetBoardItems(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	items, err := rh.boardItemService.ListItems(boardId)
	if err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    items,
	})
}

func (rh *RestHandler) CreateBoardItem(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.CreateBoardItemRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	item, err := rh.boardItemService.CreateItem(boardId, &body)
	if err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    item,
	})
}

func (rh *RestHandler) UpdateBoardItem(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.UpdateBoardItemEnvelope
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	item, err := rh.boardItemService.UpdateItem(boardId, body.ItemId, &body.Updates)
	if err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    item,
	})
}

func (rh *RestHandler) DeleteBoardItem(ctx *gin.Context) {
	boardId, ok := rh.boardIdFromPath(ctx)
	if !ok {
		return
	}

	var body models.DeleteBoardItemRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	if err := rh.boardItemService.DeleteItem(boardId, body.ItemId); err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgItemDeletedSuccessfully,
	})
}

// UploadImage godoc
// @Summary      Upload a board image
// @Description  Validates content type and size, stores the file and returns its public url
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /images [post]
func (rh *RestHandler) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrNoFileProvided})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrNoFileProvided})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := rh.fileManagerService.UploadBoardImage(fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		log.Printf("Error uploading image %q: %v", fileHeader.Filename, err)
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    gin.H{"url": url},
	})
}

func (rh *RestHandler) GetLinkPreview(ctx *gin.Context) {
	var body models.LinkPreviewRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		rh.abortWithErrors(ctx, http.StatusBadRequest, []error{errs.ErrInvalidRequestBody})
		return
	}

	preview, err := rh.linkPreviewService.FetchPreview(body.URL)
	if err != nil {
		rh.abortWithErrors(ctx, statusForError(err), []error{err})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    preview,
	})
}
