package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lysyi3m/feedpress/app/cfg"
	"github.com/lysyi3m/feedpress/app/content"
	"github.com/lysyi3m/feedpress/app/document"
	"github.com/lysyi3m/feedpress/app/feed"
	"github.com/lysyi3m/feedpress/app/pipeline"
	"github.com/lysyi3m/feedpress/app/render"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg)

	os.Exit(run(context.Background(), appCfg))
}

func setupLogging(appCfg *cfg.Cfg) {
	level := slog.LevelInfo
	if appCfg.Quiet {
		level = slog.LevelWarn
	}
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(ctx context.Context, appCfg *cfg.Cfg) int {
	slog.Debug("Starting run", "version", appCfg.Version)

	subs, err := feed.ResolveSources(appCfg.Sources)
	if err != nil {
		slog.Error("Failed to resolve sources", "error", err)
		return 1
	}

	client := feed.NewClient(appCfg.RequestTimeout(), appCfg.UserAgent)
	parser := feed.NewParser()

	var entries []feed.Entry
	for _, sub := range subs {
		data, err := client.FetchFeed(ctx, sub.URL)
		if err != nil {
			slog.Error("Failed to fetch feed, skipping", "url", sub.URL, "error", err)
			continue
		}
		channel, parsed, err := parser.Run(data, sub.Name)
		if err != nil {
			slog.Error("Failed to parse feed, skipping", "url", sub.URL, "error", err)
			continue
		}
		slog.Info("Feed loaded", "channel", channel, "entries", len(parsed))
		entries = append(entries, parsed...)
	}

	var progress io.Writer
	if !appCfg.Quiet {
		progress = os.Stdout
	}

	asm := document.NewAssembler()
	p := pipeline.New(client, content.NewExtractor(), content.NewFilter(), pipeline.Options{
		AgeLimit:    appCfg.AgeLimit(),
		ExcludeTags: appCfg.FilterTags,
		Progress:    progress,
	})

	results := p.Run(ctx, entries, asm)
	if progress != nil && len(results) > 0 {
		fmt.Fprintln(progress)
	}

	doc := asm.Build()
	if doc.Empty() {
		fmt.Fprintln(os.Stderr, "No content.")
		return 1
	}

	source := render.Markdown(doc)
	if err := render.NewPandoc().Render(ctx, source, appCfg.Output); err != nil {
		slog.Error("Rendering failed", "output", appCfg.Output, "error", err)
		// Keep the generated source around so the failure can be
		// diagnosed against the exact document that was rendered.
		dumpPath := appCfg.Output + ".dump.md"
		if werr := os.WriteFile(dumpPath, source, 0644); werr != nil {
			slog.Error("Failed to dump document source", "path", dumpPath, "error", werr)
		} else {
			slog.Error("Document source dumped for diagnosis", "path", dumpPath)
		}
		return 1
	}

	accepted := 0
	for _, res := range results {
		if res.Status == pipeline.StatusContent {
			accepted++
		}
	}
	slog.Info("Document written", "path", appCfg.Output, "articles", accepted, "channels", len(doc.Channels))

	return 0
}
