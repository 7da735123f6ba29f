package interfaces

import "moodboard/internal/models"

// PreviewFetcher resolves page metadata for pasted links. Missing
// fields are soft failures and come back empty, not as errors.
type PreviewFetcher interface {
	FetchPreview(url string) (*models.LinkPreview, error)
}
