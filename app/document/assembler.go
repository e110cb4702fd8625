package document

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

const spanFormat = "Jan 2, 2006 15:04"

// Assembler accumulates the two block sequences of a run: the index/summary
// section and the full-article section. The index section always precedes
// the full section in the built document.
type Assembler struct {
	index    []Block
	full     []Block
	channels map[string]struct{}
	start    time.Time
	end      time.Time
	recorded bool
}

func NewAssembler() *Assembler {
	return &Assembler{
		channels: make(map[string]struct{}),
	}
}

func (a *Assembler) AddIndex(blocks ...Block) {
	a.index = append(a.index, blocks...)
}

func (a *Assembler) AddFull(blocks ...Block) {
	a.full = append(a.full, blocks...)
}

// Record notes the source channel and timestamp of a content-bearing entry.
// Only recorded entries contribute to the channel set and the time span.
func (a *Assembler) Record(channel string, ts time.Time) {
	if channel != "" {
		a.channels[channel] = struct{}{}
	}
	if !a.recorded || ts.Before(a.start) {
		a.start = ts
	}
	if !a.recorded || ts.After(a.end) {
		a.end = ts
	}
	a.recorded = true
}

func (a *Assembler) Build() Document {
	doc := Document{
		TitleLine: "News",
		Channels:  slices.Sorted(maps.Keys(a.channels)),
	}

	if a.recorded {
		doc.Span = &TimeSpan{Start: a.start, End: a.end}
		doc.TitleLine = fmt.Sprintf("%s - %s",
			a.start.Format(spanFormat), a.end.Format(spanFormat))
	}

	doc.Blocks = make([]Block, 0, len(a.index)+len(a.full))
	doc.Blocks = append(doc.Blocks, a.index...)
	doc.Blocks = append(doc.Blocks, a.full...)

	return doc
}
