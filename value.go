package textlayout

// GlyphID identifies a glyph within its typeface's own glyph-ID
// namespace, already offset by BaseGlyphCount so it is globally unique
// across the typefaces a single run may have fallen back across. See
// fonthost.Typeface for the offsetting scheme.
type GlyphID uint32

// Point32 is a single-precision 2D point, used for per-glyph positions.
type Point32 struct {
	X, Y float32
}

// LayoutValue is the cached (or freshly computed) result of shaping one
// run: per-character advances across the whole run, the glyphs produced,
// their positions, and bookkeeping for cache diagnostics.
type LayoutValue struct {
	// Advances holds one entry per rune of the run's context window
	// (sized ContextCount, not Count): entries outside [Start,
	// Start+Count) are left zero. Indexing is context-absolute, so a
	// caller holding a rune offset into the original text can read its
	// advance directly without re-deriving Start.
	Advances []float32

	// TotalAdvance is the sum of Advances across the shaped run.
	TotalAdvance float32

	// Glyphs holds the glyph IDs produced by the shaper, in visual
	// (not necessarily logical) order.
	Glyphs []GlyphID

	// Positions holds one entry per entry in Glyphs: the glyph's pen
	// position relative to the run's origin.
	Positions []Point32

	// ElapsedNanos is how long this value took to compute. It is
	// populated on a cache miss and carried unchanged through cache
	// hits, where the cache uses it to account the compute time each
	// hit saved; it does not by itself tell a fresh value from a
	// cached one.
	ElapsedNanos int64
}

// approxSize estimates the in-memory footprint of the value, in bytes,
// for the cache's byte-budget accounting. Capacity, not length, is
// costed: a value whose slices were grown and then trimmed still holds
// the larger backing array.
func (v LayoutValue) approxSize() int64 {
	const structOverhead = 32
	return int64(structOverhead) +
		int64(cap(v.Advances))*4 +
		int64(cap(v.Glyphs))*4 +
		int64(cap(v.Positions))*8
}
