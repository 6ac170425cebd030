package textlayout

import (
	"unicode/utf16"

	xtext "golang.org/x/text/language"
)

// LayoutKey is the composite fingerprint under which a layout result is
// cached: the text being shaped, the window of context surrounding it,
// the requested direction, and the paint it was shaped with.
//
// LayoutKey is comparable and is used directly as a layoutcache map key.
// The original code units are never retained as a []uint16 (slices are
// not comparable); Text is instead the lossless UTF-8 re-encoding of
// that UTF-16 context window, which preserves code-unit identity for
// equality purposes since the conversion is a bijection over well-formed
// UTF-16.
type LayoutKey struct {
	// Text is the full context window the run was shaped within.
	Text string

	// Start is the rune offset of the run within Text.
	Start int

	// Count is the number of runes in the run, starting at Start.
	Count int

	// ContextCount is the total number of runes in Text. It is kept
	// distinct from len([]rune(Text)) in the key so two requests that
	// share a run but differ only in surrounding context never collide.
	ContextCount int

	Dir   Direction
	Paint Paint
}

// NewLayoutKey builds a LayoutKey from a UTF-16 context window, mirroring
// the UTF-16-oriented text representation layout requests arrive in.
// start and count are rune offsets into the decoded window. They equal
// UTF-16 code-unit offsets into utf16Context only when the window holds
// no surrogate pairs, since each pair decodes to a single rune.
func NewLayoutKey(utf16Context []uint16, start, count int, dir Direction, paint Paint) LayoutKey {
	runes := utf16.Decode(utf16Context)
	paint.Language = canonicalLanguageTag(paint.Language)
	return LayoutKey{
		Text:         string(runes),
		Start:        start,
		Count:        count,
		ContextCount: len(runes),
		Dir:          dir,
		Paint:        paint,
	}
}

// canonicalLanguageTag validates and canonicalizes a BCP-47 tag so two
// requests that name the same language under different casing or
// subtags ("en-us", "EN-US") collapse onto one cache key and one
// shaping-library language tag, instead of each spelling getting its own
// cache slot and its own pass through script/font disambiguation. A
// malformed tag degrades to "" (§3's "unspecified" language) rather than
// reaching the shaper unvalidated.
func canonicalLanguageTag(tag string) string {
	if tag == "" {
		return ""
	}
	parsed, err := xtext.Parse(tag)
	if err != nil {
		return ""
	}
	return parsed.String()
}

// Run returns the rune slice of Text that Start/Count select.
func (k LayoutKey) Run() []rune {
	runes := []rune(k.Text)
	if k.Start < 0 || k.Start > len(runes) {
		return nil
	}
	end := k.Start + k.Count
	if end > len(runes) {
		end = len(runes)
	}
	return runes[k.Start:end]
}

// approxSize estimates the in-memory footprint of the key, in bytes, for
// the cache's byte-budget accounting. It counts the struct overhead plus
// the UTF-8 payload, mirroring the original cache's practice of costing
// the text payload rather than just the struct header.
func (k LayoutKey) approxSize() int64 {
	const structOverhead = 64 // Dir, Paint, Start/Count/ContextCount, string header
	return int64(structOverhead + len(k.Text) + len(k.Paint.Language))
}
