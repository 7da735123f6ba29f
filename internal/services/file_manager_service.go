package services

import (
	"io"
	"strings"

	"moodboard/internal/enums"
	"moodboard/internal/errs"
	"moodboard/internal/interfaces"
	"moodboard/internal/utils"
)

// MaxImageSize is the upload ceiling enforced before any transfer starts.
const MaxImageSize = 10 * 1024 * 1024

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

// UploadBoardImage validates and stores a pasted or picked image,
// returning its public url.
func (fs *FileManagerService) UploadBoardImage(fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.ErrNotAnImage
	}
	if fileSize > MaxImageSize {
		return "", errs.ErrFileTooLarge
	}
	return fs.fileManager.UploadFile(utils.SafeFileName(fileName), file, fileSize, contentType, enums.FILE_BUCKET_BOARD_IMAGES)
}
