package cfg

import (
	"time"
)

type Cfg struct {
	Sources    []string // feed URLs or YAML subscription files
	Output     string
	AgeHours   int
	FilterTags []string
	Quiet      bool
	Timeout    int // seconds
	UserAgent  string
	Debug      bool
	Version    string
}

// AgeLimit returns the age cutoff; zero disables it.
func (c *Cfg) AgeLimit() time.Duration {
	if c.AgeHours <= 0 {
		return 0
	}
	return time.Duration(c.AgeHours) * time.Hour
}

func (c *Cfg) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}
