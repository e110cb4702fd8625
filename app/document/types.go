package document

import (
	"time"
)

// Abstract document model consumed by the render sink. Blocks are built by
// the pipeline and only ever appended in order; nothing downstream of the
// renderer inspects their internals.

type BlockKind int

const (
	Heading BlockKind = iota
	Paragraph
	Raw
)

type Block struct {
	Kind   BlockKind
	Level  int // heading level, unused for other kinds
	Text   string
	Anchor string // optional heading anchor id
}

func NewHeading(level int, text, anchor string) Block {
	return Block{Kind: Heading, Level: level, Text: text, Anchor: anchor}
}

func NewParagraph(text string) Block {
	return Block{Kind: Paragraph, Text: text}
}

// NewRaw wraps a fragment passed through to the renderer untouched,
// e.g. layout directives the block model has no vocabulary for.
func NewRaw(text string) Block {
	return Block{Kind: Raw, Text: text}
}

type TimeSpan struct {
	Start time.Time
	End   time.Time
}

type Document struct {
	TitleLine string
	Channels  []string
	Span      *TimeSpan
	Blocks    []Block
}

func (d Document) Empty() bool {
	return len(d.Blocks) == 0
}
