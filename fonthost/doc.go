// Package fonthost owns typeface loading and the font-fallback chain the
// shaping driver consults when a script run contains characters the
// primary typeface cannot render.
//
// Font file parsing and glyph rasterization are delegated entirely to
// github.com/go-text/typesetting/font; this package only adds identity
// (Typeface.ID), a glyph-ID namespace offset (Typeface.BaseGlyphCount),
// a concurrency-safe coverage cache, and fallback-chain resolution.
package fonthost
