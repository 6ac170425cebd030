// Package textlayout provides a bounded cache and shaping pipeline for
// turning (text, paint) pairs into positioned glyphs and per-character
// advances.
//
// Engine is the facade this package exports: it owns a shape.Shaper, a
// fonthost.FontHost, and an optional layoutcache.Cache, and routes
// GetValue calls between them. Bidi and script segmentation live in
// segment, font loading and fallback selection in fonthost, the
// shaping driver itself in shape, and the byte-budgeted memoization
// policy in layoutcache. Font rasterization, the complex-script
// shaping algorithm, and Unicode property databases are external
// collaborators reached through those sub-packages; textlayout only
// coordinates them.
package textlayout
