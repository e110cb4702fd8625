package pipeline

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/feedpress/app/content"
	"github.com/lysyi3m/feedpress/app/document"
	"github.com/lysyi3m/feedpress/app/feed"
)

const dateFormat = "Jan 2, 2006 15:04"

// emit appends the block groups for one content-bearing entry: the full
// article (its own page, two-column body, nav line) and the matching index
// entry (linked heading, metadata line, optional two-column description).
func (p *Pipeline) emit(entry feed.Entry, index int, body []document.Block, asm *document.Assembler) {
	articleAnchor := fmt.Sprintf("article-%d", index)
	entryAnchor := fmt.Sprintf("entry-%d", index)

	asm.AddFull(document.NewRaw(`\newpage`))
	asm.AddFull(document.NewHeading(1, entry.Title, articleAnchor))
	asm.AddFull(document.NewRaw(`\begin{multicols}{2}`))
	asm.AddFull(body...)
	asm.AddFull(document.NewRaw(`\end{multicols}`))
	asm.AddFull(document.NewParagraph(fmt.Sprintf(
		"[back](#%s) · [top](#top) · [source](%s)", entryAnchor, entry.Link)))

	asm.AddIndex(document.NewHeading(2,
		fmt.Sprintf("[%s](#%s)", entry.Title, articleAnchor), entryAnchor))
	asm.AddIndex(document.NewParagraph(p.metaLine(entry)))

	if entry.Description != "" {
		if desc := p.filter.Run(entry.Description, content.DescriptionOptions); len(desc) > 0 {
			asm.AddIndex(document.NewRaw(`\begin{multicols}{2}`))
			asm.AddIndex(desc...)
			asm.AddIndex(document.NewRaw(`\end{multicols}`))
		}
	}

	asm.Record(entry.Channel, entry.PublishedAt)
}

func (p *Pipeline) metaLine(entry feed.Entry) string {
	parts := []string{
		"[top](#top)",
		fmt.Sprintf("[source](%s)", entry.Link),
		entry.Channel,
		entry.PublishedAt.Format(dateFormat),
	}
	if len(entry.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("*%s*", strings.Join(entry.Tags, ", ")))
	}
	return strings.Join(parts, " · ")
}
