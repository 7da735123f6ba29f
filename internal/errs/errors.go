package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")

	ErrTitleRequired       = Error("board title is required")
	ErrBoardNotFound       = Error("board not found")
	ErrItemNotFound        = Error("board item not found")
	ErrNoUpdates           = Error("no updates provided")
	ErrUnknownItemType     = Error("unknown board item type")
	ErrInvalidItemContent  = Error("invalid item content for type")
	ErrInvalidGeometry     = Error("invalid item geometry")
	ErrInvalidWallpaper    = Error("unknown wallpaper pattern")
	ErrInvalidTransparency = Error("background transparency must be between 0 and 1")
	ErrInvalidBoardId      = Error("invalid board id")
	ErrBoardCreationFailed = Error("board creation failed")
	ErrItemCreationFailed  = Error("board item creation failed")

	ErrNoFileProvided       = Error("no file provided")
	ErrNotAnImage           = Error("file must be an image")
	ErrFileTooLarge         = Error("file size must be less than 10MB")
	ErrStorageNotConfigured = Error("object storage is not configured")
	ErrUploadFailed         = Error("image upload failed")

	ErrInvalidURL      = Error("invalid url")
	ErrLinkFetchFailed = Error("failed to fetch link preview")
)
