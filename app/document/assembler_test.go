package document

import (
	"testing"
	"time"
)

func TestAssembler_Empty(t *testing.T) {
	asm := NewAssembler()

	doc := asm.Build()

	if !doc.Empty() {
		t.Error("Expected empty document")
	}
	if doc.TitleLine != "News" {
		t.Errorf("Expected title line 'News', got %q", doc.TitleLine)
	}
	if doc.Span != nil {
		t.Errorf("Expected no time span, got %v", doc.Span)
	}
	if len(doc.Channels) != 0 {
		t.Errorf("Expected no channels, got %v", doc.Channels)
	}
}

func TestAssembler_SectionOrder(t *testing.T) {
	asm := NewAssembler()

	asm.AddFull(NewParagraph("full body"))
	asm.AddIndex(NewHeading(2, "entry", "entry-0"))
	asm.AddIndex(NewParagraph("meta"))
	asm.AddFull(NewParagraph("more body"))

	doc := asm.Build()

	if len(doc.Blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(doc.Blocks))
	}

	// Index blocks always come before full-article blocks, regardless of
	// the order they were appended in.
	if doc.Blocks[0].Kind != Heading || doc.Blocks[0].Text != "entry" {
		t.Errorf("Expected index heading first, got %+v", doc.Blocks[0])
	}
	if doc.Blocks[1].Text != "meta" {
		t.Errorf("Expected index meta second, got %+v", doc.Blocks[1])
	}
	if doc.Blocks[2].Text != "full body" {
		t.Errorf("Expected full body third, got %+v", doc.Blocks[2])
	}
}

func TestAssembler_ChannelSetAndSpan(t *testing.T) {
	asm := NewAssembler()

	t1 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	t3 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	asm.Record("Beta Blog", t2)
	asm.Record("Alpha News", t1)
	asm.Record("Beta Blog", t3)

	doc := asm.Build()

	if len(doc.Channels) != 2 {
		t.Fatalf("Expected 2 channels, got %v", doc.Channels)
	}
	if doc.Channels[0] != "Alpha News" || doc.Channels[1] != "Beta Blog" {
		t.Errorf("Expected sorted channel set, got %v", doc.Channels)
	}

	if doc.Span == nil {
		t.Fatal("Expected a time span")
	}
	if !doc.Span.Start.Equal(t1) {
		t.Errorf("Expected span start %v, got %v", t1, doc.Span.Start)
	}
	if !doc.Span.End.Equal(t2) {
		t.Errorf("Expected span end %v, got %v", t2, doc.Span.End)
	}

	want := "Mar 1, 2025 08:00 - Mar 2, 2025 09:30"
	if doc.TitleLine != want {
		t.Errorf("Expected title line %q, got %q", want, doc.TitleLine)
	}
}

func TestAssembler_SingleEntrySpan(t *testing.T) {
	asm := NewAssembler()

	ts := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	asm.Record("Solo", ts)

	doc := asm.Build()

	if doc.Span == nil {
		t.Fatal("Expected a time span")
	}
	if !doc.Span.Start.Equal(ts) || !doc.Span.End.Equal(ts) {
		t.Errorf("Expected degenerate span at %v, got %v - %v", ts, doc.Span.Start, doc.Span.End)
	}
}
