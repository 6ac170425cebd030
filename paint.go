package textlayout

// Paint carries the subset of paint state that affects shaping output:
// which typeface to shape with, at what size, and under what synthetic
// transform. Paint is comparable so it can be embedded directly in a
// LayoutKey and used as a Go map key without boxing.
type Paint struct {
	// TypefaceID identifies the typeface to shape with. Typeface
	// ownership and lookup live in fonthost; textlayout only ever
	// carries the identity, never the typeface itself, so that Paint
	// stays comparable.
	TypefaceID uint64

	// SizePx is the requested text size in pixels.
	SizePx float32

	// ScaleX is a horizontal synthetic scale factor (1.0 = unscaled).
	ScaleX float32

	// SkewX is a synthetic italic shear factor: a glyph's final X
	// position is offset by its vertical offset times SkewX (see
	// shape.Request.SkewX), matching Skia's SkPaint.getTextSkewX
	// convention of a ratio rather than an angle.
	SkewX float32

	// Flags holds paint-level shaping hints (e.g. fake-bold, subpixel
	// positioning) opaque to this package. They take part in LayoutKey
	// equality; they are not passed to the shaper.
	Flags uint32

	// Language is a BCP-47 language tag used to disambiguate
	// script/font selection for Han-unified scripts. Empty means
	// "unspecified".
	Language string
}
