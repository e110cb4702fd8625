package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/mmcdole/gofeed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

type Parser struct {
	gofeedParser *gofeed.Parser
	now          func() time.Time
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		now:          time.Now,
	}
}

// Run parses raw feed data and normalizes its items. channelOverride, when
// non-empty, replaces the feed's own title as the channel name. Items
// without a title are skipped: a title is the one attribute every entry
// must carry.
func (p *Parser) Run(data []byte, channelOverride string) (string, []Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	channel := cmp.Or(channelOverride, parsed.Title)

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Title == "" {
			slog.Debug("Skipping item without title", "channel", channel, "link", item.Link)
			continue
		}
		entries = append(entries, p.normalizeItem(item, parsed, channel))
	}

	return channel, entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, parsed *gofeed.Feed, channel string) Entry {
	link := sanitizeLink(item.Link)

	return Entry{
		PublishedAt: p.resolveTimestamp(item, parsed),
		Channel:     channel,
		Title:       item.Title,
		Description: item.Description,
		Link:        link,
		Identity:    cmp.Or(item.GUID, link),
		Tags:        item.Categories,
	}
}

// resolveTimestamp picks the first usable timestamp: item updated, item
// published, the parent feed's updated time, then the current wall clock.
func (p *Parser) resolveTimestamp(item *gofeed.Item, parsed *gofeed.Feed) time.Time {
	for _, ts := range []*time.Time{item.UpdatedParsed, item.PublishedParsed, parsed.UpdatedParsed} {
		if ts != nil && !ts.IsZero() {
			return ts.UTC()
		}
	}
	return p.now().UTC()
}

var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// sanitizeLink projects a URL onto ASCII, dropping anything outside it.
// Lossy on purpose: downstream URL usage requires plain ASCII.
func sanitizeLink(link string) string {
	sanitized, _, err := transform.String(asciiOnly, link)
	if err != nil {
		return link
	}
	return sanitized
}
