package content

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/feedpress/app/document"
)

// FilterOptions configures one gating policy. A zero value disables the
// corresponding check.
type FilterOptions struct {
	MinLength  int     // reject when text length (runes) <= MinLength
	MaxLength  int     // truncate to MaxLength runes and append an ellipsis
	MaxEntropy float64 // reject when character entropy exceeds this
}

var (
	// DescriptionOptions gates short summary text. No entropy check:
	// entropy over short strings is too noisy to be meaningful.
	DescriptionOptions = FilterOptions{MinLength: 15, MaxLength: 200}

	// ArticleOptions gates full article bodies. No truncation: accepted
	// articles are shown complete.
	ArticleOptions = FilterOptions{MinLength: 500, MaxEntropy: 5.05}
)

const ellipsis = "…"

// Filter decides whether extracted HTML carries enough substance to be worth
// including, and converts what survives into paragraph blocks.
type Filter struct{}

func NewFilter() *Filter {
	return &Filter{}
}

// Run converts HTML to plain text and applies the gates in order: minimum
// length, entropy ceiling, truncation. Returns nil when the text is
// rejected.
func (f *Filter) Run(html string, opts FilterOptions) []document.Block {
	text := htmlToText(html)

	// The HTML conversion occasionally misrenders punctuation as escape
	// sequences; forward slashes are always safe downstream.
	text = strings.ReplaceAll(text, `\`, "/")

	if opts.MinLength > 0 && utf8.RuneCountInString(text) <= opts.MinLength {
		return nil
	}

	if opts.MaxEntropy > 0 && Entropy(text) > opts.MaxEntropy {
		return nil
	}

	if opts.MaxLength > 0 && utf8.RuneCountInString(text) > opts.MaxLength {
		text = string([]rune(text)[:opts.MaxLength]) + ellipsis
	}

	var blocks []document.Block
	for _, para := range strings.Split(text, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			blocks = append(blocks, document.NewParagraph(para))
		}
	}
	return blocks
}

// htmlToText flattens HTML into plain text paragraphs separated by blank
// lines. Images and scripts are stripped; tables are dropped wholesale since
// the output layout cannot represent them.
func htmlToText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript, img, figure, table").Remove()

	var paras []string
	sel := doc.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre")
	sel.Each(func(_ int, s *goquery.Selection) {
		// Nested block elements are covered by their container.
		if s.ParentsFiltered("li, blockquote").Length() > 0 {
			return
		}
		if text := collapseSpace(s.Text()); text != "" {
			paras = append(paras, text)
		}
	})

	if len(paras) == 0 {
		// Bare text with no block structure at all.
		if text := collapseSpace(doc.Text()); text != "" {
			paras = append(paras, text)
		}
	}

	return strings.Join(paras, "\n\n")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
