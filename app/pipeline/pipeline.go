package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lysyi3m/feedpress/app/content"
	"github.com/lysyi3m/feedpress/app/document"
	"github.com/lysyi3m/feedpress/app/feed"
)

// Pipeline decides which normalized entries become visible, in what order,
// and emits their blocks into the assembler. One Pipeline serves one run;
// the seen set is not persisted.
type Pipeline struct {
	fetcher   ArticleFetcher
	extractor Extractor
	filter    *content.Filter
	opts      Options
	seen      map[string]struct{}
	excluded  map[string]struct{}
}

func New(fetcher ArticleFetcher, extractor Extractor, filter *content.Filter, opts Options) *Pipeline {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeTags))
	for _, tag := range opts.ExcludeTags {
		excluded[tag] = struct{}{}
	}

	return &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		filter:    filter,
		opts:      opts,
		seen:      make(map[string]struct{}),
		excluded:  excluded,
	}
}

// Run processes entries most-recent-first. Tag exclusion and the age cutoff
// are checked before deduplication, and deduplication before any network
// I/O, so skipped entries cost nothing. Returns one Result per fetch
// attempt; per-entry failures never abort the run.
func (p *Pipeline) Run(ctx context.Context, entries []feed.Entry, asm *document.Assembler) []Result {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b feed.Entry) int {
		return a.PublishedAt.Compare(b.PublishedAt)
	})

	now := p.opts.Now()
	var results []Result
	index := 0

	for i := len(sorted) - 1; i >= 0; i-- {
		entry := sorted[i]

		if p.hasExcludedTag(entry) {
			slog.Debug("Entry excluded by tag", "title", entry.Title, "tags", entry.Tags)
			continue
		}

		if p.opts.AgeLimit > 0 && now.Sub(entry.PublishedAt) > p.opts.AgeLimit {
			continue
		}

		if entry.Identity != "" {
			if _, ok := p.seen[entry.Identity]; ok {
				continue
			}
			// Marked before the fetch: a failed fetch still consumes
			// the dedup slot for the rest of the run.
			p.seen[entry.Identity] = struct{}{}
		}

		res := p.process(ctx, entry, index, asm)
		results = append(results, res)
		p.mark(res.Status)

		if res.Status == StatusContent {
			index++
		} else if res.Status == StatusFailed {
			slog.Debug("Entry skipped", "title", entry.Title, "link", entry.Link, "error", res.Err)
		}
	}

	return results
}

func (p *Pipeline) process(ctx context.Context, entry feed.Entry, index int, asm *document.Assembler) Result {
	res := Result{Entry: entry, Index: -1}

	data, err := p.fetcher.FetchArticle(ctx, entry.Link)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("fetch: %w", err)
		return res
	}

	html, err := p.extractor.Run(data)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("extract: %w", err)
		return res
	}

	body := p.filter.Run(html, content.ArticleOptions)
	if len(body) == 0 {
		res.Status = StatusNoContent
		return res
	}

	p.emit(entry, index, body, asm)
	res.Status = StatusContent
	res.Index = index
	return res
}

func (p *Pipeline) hasExcludedTag(entry feed.Entry) bool {
	for _, tag := range entry.Tags {
		if _, ok := p.excluded[tag]; ok {
			return true
		}
	}
	return false
}

func (p *Pipeline) mark(status Status) {
	if p.opts.Progress == nil {
		return
	}
	switch status {
	case StatusContent:
		fmt.Fprint(p.opts.Progress, ".")
	case StatusNoContent:
		fmt.Fprint(p.opts.Progress, "-")
	case StatusFailed:
		fmt.Fprint(p.opts.Progress, "x")
	}
}
