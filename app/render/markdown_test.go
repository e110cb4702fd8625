package render

import (
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/feedpress/app/document"
)

func TestMarkdown_Metadata(t *testing.T) {
	asm := document.NewAssembler()
	asm.Record("Alpha News", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	asm.Record("Beta Blog", time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC))
	asm.AddIndex(document.NewParagraph("index entry"))

	out := string(Markdown(asm.Build()))

	if !strings.HasPrefix(out, "---\n") {
		t.Error("Expected YAML metadata block at the start")
	}
	if !strings.Contains(out, `title: "Alpha News, Beta Blog"`) {
		t.Errorf("Expected joined channel names as title, got:\n%s", out)
	}
	if !strings.Contains(out, `author: "Mar 1, 2025 08:00 - Mar 2, 2025 09:30"`) {
		t.Errorf("Expected time span in the author field, got:\n%s", out)
	}
	if !strings.Contains(out, "papersize: a4") || !strings.Contains(out, "geometry: margin=2cm") {
		t.Error("Expected page directives in metadata")
	}
	if !strings.Contains(out, `\usepackage{multicol}`) {
		t.Error("Expected multicol package in header-includes")
	}
	if !strings.Contains(out, `\label{top}`) {
		t.Error("Expected a top anchor after the metadata block")
	}
}

func TestMarkdown_EmptyChannelsFallback(t *testing.T) {
	out := string(Markdown(document.NewAssembler().Build()))
	if !strings.Contains(out, `title: "News"`) {
		t.Errorf("Expected fallback title 'News', got:\n%s", out)
	}
}

func TestMarkdown_Blocks(t *testing.T) {
	doc := document.Document{
		TitleLine: "News",
		Blocks: []document.Block{
			document.NewHeading(2, "[A Story](#article-0)", "entry-0"),
			document.NewParagraph("meta line"),
			document.NewRaw(`\newpage`),
			document.NewHeading(1, "A Story", "article-0"),
			document.NewRaw(`\begin{multicols}{2}`),
			document.NewParagraph("body text"),
			document.NewRaw(`\end{multicols}`),
		},
	}

	out := string(Markdown(doc))

	if !strings.Contains(out, "## [A Story](#article-0) {#entry-0}\n") {
		t.Errorf("Expected index heading with anchor attribute, got:\n%s", out)
	}
	if !strings.Contains(out, "# A Story {#article-0}\n") {
		t.Errorf("Expected article heading with anchor attribute, got:\n%s", out)
	}
	if !strings.Contains(out, "\\newpage\n") {
		t.Error("Expected raw fragment passed through untouched")
	}

	// Index section precedes the full-article section.
	if strings.Index(out, "meta line") > strings.Index(out, `\newpage`) {
		t.Error("Expected index blocks before full-article blocks")
	}
}
