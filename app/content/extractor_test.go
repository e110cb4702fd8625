package content

import (
	"strings"
	"testing"
)

func TestExtractor_EmptyInput(t *testing.T) {
	extractor := NewExtractor()

	if _, err := extractor.Run(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestExtractor_ReadablePage(t *testing.T) {
	extractor := NewExtractor()

	para := "<p>" + strings.Repeat("This sentence pads the article body with plain readable prose. ", 8) + "</p>"
	page := `<!DOCTYPE html>
<html>
<head><title>Sample Article</title></head>
<body>
<nav><a href="/">home</a> <a href="/about">about</a></nav>
<article>
<h1>Sample Article</h1>
` + para + para + para + `
</article>
<footer>copyright notice</footer>
</body>
</html>`

	content, err := extractor.Run([]byte(page))
	if err != nil {
		t.Fatalf("Expected extraction to succeed: %v", err)
	}
	if !strings.Contains(content, "plain readable prose") {
		t.Errorf("Expected article body in extracted content, got %q", content)
	}
}
