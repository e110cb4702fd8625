package pipeline

import (
	"io"
	"time"

	"github.com/lysyi3m/feedpress/app/feed"
)

type Status int

const (
	// StatusContent: the article was fetched, extracted and accepted.
	StatusContent Status = iota
	// StatusNoContent: the article was fetched but nothing substantive
	// survived the content filter.
	StatusNoContent
	// StatusFailed: the fetch or extraction itself failed.
	StatusFailed
)

// Result records the outcome of one processed entry. Entries skipped before
// any fetch attempt (excluded tag, too old, duplicate) produce no Result.
type Result struct {
	Entry  feed.Entry
	Status Status
	Index  int // display index; -1 unless StatusContent
	Err    error
}

type Options struct {
	AgeLimit    time.Duration // 0 or negative disables the age cutoff
	ExcludeTags []string
	Progress    io.Writer        // per-attempt status characters; nil suppresses
	Now         func() time.Time // defaults to time.Now
}
