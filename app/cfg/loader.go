package cfg

import (
	"cmp"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type rawCfg struct {
	Output    string   `short:"o" long:"output" required:"true" description:"Path of the rendered document (format follows the extension)"`
	Age       int      `long:"age" env:"FEEDPRESS_AGE" default:"24" description:"Maximum entry age in hours (0 or less disables the cutoff)"`
	Filter    []string `short:"f" long:"filter" description:"Exclude entries carrying this tag (repeatable)"`
	Quiet     bool     `short:"q" long:"quiet" description:"Suppress progress output"`
	Timeout   int      `long:"timeout" env:"FEEDPRESS_TIMEOUT" default:"20" description:"HTTP request timeout in seconds"`
	UserAgent string   `long:"user-agent" env:"FEEDPRESS_USER_AGENT" description:"User agent string for HTTP requests"`
	Debug     bool     `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Sources []string `positional-arg-name:"SOURCE" required:"1" description:"Feed URL or YAML subscription file"`
	} `positional-args:"yes"`
}

// Load parses command-line flags and environment variables. Returns
// (nil, nil) when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Cfg{
		Sources:    raw.Args.Sources,
		Output:     raw.Output,
		AgeHours:   raw.Age,
		FilterTags: raw.Filter,
		Quiet:      raw.Quiet,
		Timeout:    raw.Timeout,
		UserAgent:  cmp.Or(raw.UserAgent, defaultUserAgent),
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}, nil
}
