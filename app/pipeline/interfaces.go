package pipeline

import (
	"context"
)

// ArticleFetcher retrieves the raw page behind an entry's link.
// Implemented by feed.Client.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, url string) ([]byte, error)
}

// Extractor turns a raw page into readable article HTML.
// Implemented by content.Extractor.
type Extractor interface {
	Run(data []byte) (string, error)
}
