package render

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/feedpress/app/document"
)

// Markdown serializes the assembled document as pandoc-flavored markdown:
// a YAML metadata block carrying the typesetting directives, then the blocks
// in order. The title is the joined channel names; the author field carries
// the time-span string, which pandoc places under the title on the first
// page.
func Markdown(doc document.Document) []byte {
	var b strings.Builder

	title := "News"
	if len(doc.Channels) > 0 {
		title = strings.Join(doc.Channels, ", ")
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "author: %q\n", doc.TitleLine)
	b.WriteString("papersize: a4\n")
	b.WriteString("geometry: margin=2cm\n")
	b.WriteString("header-includes:\n")
	b.WriteString("  - \\usepackage{multicol}\n")
	b.WriteString("  - \\setlength{\\columnsep}{18pt}\n")
	b.WriteString("---\n\n")

	// Anchor for the per-entry "top" links.
	b.WriteString("\\label{top}\n\n")

	for _, blk := range doc.Blocks {
		writeBlock(&b, blk)
	}

	return []byte(b.String())
}

func writeBlock(b *strings.Builder, blk document.Block) {
	switch blk.Kind {
	case document.Heading:
		b.WriteString(strings.Repeat("#", blk.Level))
		b.WriteString(" ")
		b.WriteString(blk.Text)
		if blk.Anchor != "" {
			fmt.Fprintf(b, " {#%s}", blk.Anchor)
		}
	case document.Paragraph, document.Raw:
		b.WriteString(blk.Text)
	}
	b.WriteString("\n\n")
}
