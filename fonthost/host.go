package fonthost

import (
	"fmt"
	"sync"
)

// FontHost owns the set of typefaces available to the shaping driver and
// resolves, for a given rune, which typeface in the fallback chain
// should render it. Loading font files and rasterizing glyphs belong to
// the host or to go-text/typesetting beneath it; this package only adds
// identity and fallback-order bookkeeping on top.
type FontHost struct {
	mu        sync.RWMutex
	byID      map[uint64]*Typeface
	fallback  []*Typeface // ordered; index 0 is primary
	baseTotal uint32
}

// NewFontHost creates an empty host. Typefaces are added with AddTypeface.
func NewFontHost() *FontHost {
	return &FontHost{byID: make(map[uint64]*Typeface)}
}

// AddTypeface parses data as a TTF/OTF font and appends it to the
// fallback chain. The first typeface added is the primary typeface used
// when no fallback is needed.
func (h *FontHost) AddTypeface(data []byte) (*Typeface, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tf, err := newTypeface(allocTypefaceID(), data)
	if err != nil {
		return nil, err
	}
	tf.baseGlyphCount = h.baseTotal
	h.baseTotal += uint32(tf.font.NumGlyphs())

	h.byID[tf.id] = tf
	h.fallback = append(h.fallback, tf)
	return tf, nil
}

// Typeface looks up a typeface by ID, as stored in a Paint.TypefaceID.
func (h *FontHost) Typeface(id uint64) (*Typeface, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	tf, ok := h.byID[id]
	return tf, ok
}

// Primary returns the first typeface added to the host, or an error if
// none has been added yet.
func (h *FontHost) Primary() (*Typeface, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.fallback) == 0 {
		return nil, fmt.Errorf("fonthost: no typeface registered")
	}
	return h.fallback[0], nil
}

// Purge clears every typeface's glyph-coverage cache, forcing the next
// HasGlyph query to consult the font tables again. It does not release
// or reparse the typefaces themselves: the host, not the engine, owns
// their lifetime (see the "Ownership of typefaces" design note).
func (h *FontHost) Purge() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, tf := range h.fallback {
		tf.clearCoverage()
	}
}

// Resolve returns the first typeface (starting from preferred, if
// non-nil, otherwise the primary) that covers r, falling back through
// the chain in registration order. If no typeface covers r, the
// starting typeface is returned as-is so the shaper can still emit a
// .notdef glyph rather than fail outright.
func (h *FontHost) Resolve(preferred *Typeface, r rune) (*Typeface, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.fallback) == 0 {
		return nil, fmt.Errorf("fonthost: no typeface registered")
	}

	start := preferred
	if start == nil {
		start = h.fallback[0]
	}
	if start.HasGlyph(r) {
		return start, nil
	}
	for _, tf := range h.fallback {
		if tf == start {
			continue
		}
		if tf.HasGlyph(r) {
			return tf, nil
		}
	}
	return start, nil
}
