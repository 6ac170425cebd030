// Package shape drives an external complex-script shaping library
// (github.com/go-text/typesetting/shaping, a Go HarfBuzz port) across a
// bidi-ordered, script-segmented run of text, normalizing combining
// marks and mirroring right-to-left punctuation first, and folding the
// resulting per-glyph advances back into per-character advances.
//
// shape does not resolve the Unicode bidi algorithm or split script runs
// itself — that is segment's job — and it does not load fonts or
// rasterize glyphs — that is fonthost's job. shape only drives the two
// and assembles their output into a Result.
package shape
