package feed

import (
	"time"
)

// Entry is one normalized feed item. Immutable after normalization.
type Entry struct {
	PublishedAt time.Time // resolved timestamp, UTC
	Channel     string    // source feed title
	Title       string
	Description string
	Link        string // ASCII-sanitized URL
	Identity    string // dedup key: declared id, else link
	Tags        []string
}

// Subscription is one feed source: a bare URL from the command line, or an
// element of a YAML subscription list. Name, when set, overrides the channel
// title the feed declares for itself.
type Subscription struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

type subscriptionList struct {
	Feeds []Subscription `yaml:"feeds"`
}
