package services

import (
	"errors"
	"io"
	"strings"
	"testing"

	"moodboard/internal/enums"
	"moodboard/internal/errs"
)

type fakeFileManager struct {
	fileName    string
	bucketName  string
	contentType string
}

func (ffm *fakeFileManager) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	ffm.fileName = fileName
	ffm.bucketName = bucketName
	ffm.contentType = contentType
	return "https://cdn.example.com/" + bucketName + "/" + fileName, nil
}

func TestUploadBoardImageRejectsNonImages(t *testing.T) {
	svc := NewFileManagerService(&fakeFileManager{})

	_, err := svc.UploadBoardImage("doc.pdf", strings.NewReader("pdf"), 3, "application/pdf")
	if !errors.Is(err, errs.ErrNotAnImage) {
		t.Errorf("got %v, want %v", err, errs.ErrNotAnImage)
	}
}

func TestUploadBoardImageRejectsOversizedFiles(t *testing.T) {
	svc := NewFileManagerService(&fakeFileManager{})

	_, err := svc.UploadBoardImage("big.png", strings.NewReader(""), MaxImageSize+1, "image/png")
	if !errors.Is(err, errs.ErrFileTooLarge) {
		t.Errorf("got %v, want %v", err, errs.ErrFileTooLarge)
	}
}

func TestUploadBoardImageStoresInImageBucket(t *testing.T) {
	manager := &fakeFileManager{}
	svc := NewFileManagerService(manager)

	url, err := svc.UploadBoardImage("vacation.jpg", strings.NewReader("jpeg"), 4, "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if url == "" {
		t.Error("expected a public url")
	}
	if manager.bucketName != enums.FILE_BUCKET_BOARD_IMAGES {
		t.Errorf("expected the board images bucket, got %q", manager.bucketName)
	}
	if !strings.HasSuffix(manager.fileName, "-vacation.jpg") {
		t.Errorf("stored name must keep the original suffix, got %q", manager.fileName)
	}
	if manager.fileName == "vacation.jpg" {
		t.Error("stored name must be prefixed against collisions")
	}
}
