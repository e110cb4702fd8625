package content

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-shiori/go-readability"
)

// Extractor strips page boilerplate (navigation, sidebars, scripts) from a
// fetched article page and returns the readable content as HTML.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("page data is empty")
	}

	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	if article.Content == "" {
		return "", fmt.Errorf("no readable content found")
	}

	slog.Debug("Article content extracted",
		"title", article.Title,
		"content_length", len(article.Content))

	return article.Content, nil
}
