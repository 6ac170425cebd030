// Package segment turns a paragraph of text and a requested direction
// into the ordered bidi runs and, within each bidi run, the script runs
// the shaping driver dispatches individually.
package segment

import (
	"golang.org/x/text/unicode/bidi"
)

// BidiRun is one maximal run of single-direction text, in left-to-right
// visual order (the order glyphs should be laid out on screen), with
// Start/End as rune offsets into the logical (storage-order) text.
type BidiRun struct {
	Start, End int
	RTL        bool
}

// ResolveBidiRuns splits text into visually-ordered bidi runs according
// to the Unicode Bidirectional Algorithm, honoring a forced or default
// base direction.
//
// When forceRTL is set, bidi resolution is skipped entirely and the
// whole text is returned as a single RTL run — this is the
// forced-direction fast path the ForceRTL flag selects, and it
// deliberately never treats a forced direction as merely a default (see
// textlayout.Direction.IsForced). The ForceLTR counterpart is
// ForceLTRRun.
func ResolveBidiRuns(text string, forceRTL, defaultRTL bool) []BidiRun {
	runeCount := 0
	for range text {
		runeCount++
	}
	if runeCount == 0 {
		return nil
	}
	if forceRTL {
		return []BidiRun{{Start: 0, End: runeCount, RTL: true}}
	}

	def := bidi.LeftToRight
	if defaultRTL {
		def = bidi.RightToLeft
	}

	p := &bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return []BidiRun{{Start: 0, End: runeCount, RTL: defaultRTL}}
	}

	ordering, err := p.Order()
	if err != nil {
		return []BidiRun{{Start: 0, End: runeCount, RTL: defaultRTL}}
	}

	runs := make([]BidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		runs = append(runs, BidiRun{
			Start: start,
			End:   end + 1, // Pos() end is inclusive; our End is exclusive
			RTL:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// ForceLTRRun returns a single run spanning the whole text, for the
// ForceLTR direction flag.
func ForceLTRRun(text string) []BidiRun {
	n := 0
	for range text {
		n++
	}
	if n == 0 {
		return nil
	}
	return []BidiRun{{Start: 0, End: n, RTL: false}}
}
