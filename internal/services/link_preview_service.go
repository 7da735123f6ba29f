package services

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"moodboard/internal/errs"
	"moodboard/internal/models"
)

const previewUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type LinkPreviewService struct {
	client *http.Client
}

func NewLinkPreviewService() *LinkPreviewService {
	return &LinkPreviewService{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchPreview loads the page and pulls Open Graph metadata out of its
// head. A field whose tag is missing stays empty; only the fetch itself
// failing is an error.
func (lps *LinkPreviewService) FetchPreview(url string) (*models.LinkPreview, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, errs.ErrInvalidURL
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.ErrInvalidURL
	}
	req.Header.Set("User-Agent", previewUserAgent)

	resp, err := lps.client.Do(req)
	if err != nil {
		log.Printf("Error fetching link preview for %s: %v", url, err)
		return nil, errs.ErrLinkFetchFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errs.ErrLinkFetchFailed
	}

	preview := &models.LinkPreview{URL: url}
	meta, title := extractMetadata(resp.Body)

	preview.Title = firstNonEmpty(meta["og:title"], title)
	preview.Description = firstNonEmpty(meta["og:description"], meta["description"])
	preview.Image = meta["og:image"]
	preview.SiteName = meta["og:site_name"]
	return preview, nil
}

// extractMetadata walks the document with the streaming tokenizer and
// collects meta property/name contents plus the title text.
func extractMetadata(body io.Reader) (map[string]string, string) {
	meta := map[string]string{}
	var title string

	tokenizer := html.NewTokenizer(body)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return meta, title
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "meta":
				var key, content string
				for _, attr := range token.Attr {
					switch attr.Key {
					case "property", "name":
						key = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if key != "" && content != "" {
					if _, exists := meta[key]; !exists {
						meta[key] = content
					}
				}
			case "title":
				if tokenizer.Next() == html.TextToken && title == "" {
					title = strings.TrimSpace(tokenizer.Token().Data)
				}
			case "body":
				// Metadata lives in the head; stop before the payload.
				return meta, title
			}
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
