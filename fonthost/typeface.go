package fonthost

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
)

// Typeface is a parsed, shareable font backing one or more fallback
// slots in a FontHost's chain.
//
// Typeface wraps github.com/go-text/typesetting/font.Font, which is
// read-only and concurrency-safe once parsed; the font.Face the shaping
// driver actually hands to the shaper is built from this Font by Face
// (font.Face carries mutable glyph caches and must not be shared across
// goroutines), mirroring the Font/Face split already used by
// go-text/typesetting itself. shape.Shaper caches one such Face per
// typeface and reuses it across its serialized Shape calls.
type Typeface struct {
	id   uint64
	name string
	font *font.Font

	// baseGlyphCount is the glyph-ID namespace offset assigned to this
	// typeface when it was added to a FontHost's fallback chain. Glyph
	// IDs returned by the shaper for this typeface's runs are added to
	// this value before being stored in a LayoutValue, so glyph IDs
	// from different typefaces in one run never collide.
	baseGlyphCount uint32

	// coverageMu guards coverageBlocks, this typeface's own memoized
	// answer to "does font.NominalGlyph find a glyph for rune r". Each
	// map entry packs 32 runes' worth of (checked, hasGlyph) pairs into
	// one uint64 (2 bits/rune), so probing a fallback chain's coverage
	// during Resolve does not walk the font's cmap on every call.
	coverageMu     sync.RWMutex
	coverageBlocks map[uint32]uint64
}

// coverageRunesPerBlock runes share one packed uint64 (2 bits each).
const coverageRunesPerBlock = 32

// coverageSlot splits r into the block it lives in and its bit offset
// within that block's packed word.
func coverageSlot(r rune) (block uint32, shift uint) {
	u := uint32(r)
	return u / coverageRunesPerBlock, uint(u%coverageRunesPerBlock) * 2
}

// newTypeface parses TTF/OTF font data into a Typeface. data is copied
// internally.
func newTypeface(id uint64, data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("fonthost: empty font data")
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsedFace, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("fonthost: parse font: %w", err)
	}

	name := parsedFace.Font.Describe().Family
	return &Typeface{
		id:             id,
		name:           name,
		font:           parsedFace.Font,
		coverageBlocks: make(map[uint32]uint64),
	}, nil
}

// ID uniquely identifies this typeface within its FontHost, and is the
// value stored in textlayout.Paint.TypefaceID.
func (t *Typeface) ID() uint64 { return t.id }

// Name returns the typeface's family name, as reported by the font.
func (t *Typeface) Name() string { return t.name }

// BaseGlyphCount returns the glyph-ID namespace offset for this
// typeface, as assigned by the FontHost that owns it.
func (t *Typeface) BaseGlyphCount() uint32 { return t.baseGlyphCount }

// UnitsPerEm returns the font's design units per em, used to scale
// glyph metrics to a requested pixel size.
func (t *Typeface) UnitsPerEm() uint16 {
	return t.font.Upem()
}

// Face builds a fresh, non-concurrency-safe go-text font.Face on every
// call.
func (t *Typeface) Face() *font.Face {
	return font.NewFace(t.font)
}

// HasGlyph reports whether the typeface can render r, consulting (and
// populating) the typeface's own coverage cache.
func (t *Typeface) HasGlyph(r rune) bool {
	block, shift := coverageSlot(r)

	t.coverageMu.RLock()
	word, ok := t.coverageBlocks[block]
	t.coverageMu.RUnlock()
	if ok && (word>>shift)&1 != 0 {
		return (word>>(shift+1))&1 != 0
	}

	_, has := t.font.NominalGlyph(r)

	t.coverageMu.Lock()
	word = t.coverageBlocks[block]
	word |= 1 << shift
	if has {
		word |= 1 << (shift + 1)
	} else {
		word &^= 1 << (shift + 1)
	}
	t.coverageBlocks[block] = word
	t.coverageMu.Unlock()

	return has
}

// clearCoverage drops every memoized coverage answer, forcing the next
// HasGlyph query for each rune to consult the font tables again.
func (t *Typeface) clearCoverage() {
	t.coverageMu.Lock()
	defer t.coverageMu.Unlock()
	t.coverageBlocks = make(map[uint32]uint64)
}

var nextTypefaceID atomic.Uint64

func allocTypefaceID() uint64 {
	return nextTypefaceID.Add(1)
}
