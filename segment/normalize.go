package segment

import "golang.org/x/text/unicode/norm"

// combining block ranges covering the Unicode blocks ICU classifies
// under UBLOCK_COMBINING_DIACRITICAL_MARKS and its related supplements.
// No pack dependency exposes an exact ICU block lookup, so these ranges
// are hardcoded from the Unicode block chart; see DESIGN.md.
var combiningBlocks = [][2]rune{
	{0x0300, 0x036F}, // Combining Diacritical Marks
	{0x1AB0, 0x1AFF}, // Combining Diacritical Marks Extended
	{0x1DC0, 0x1DFF}, // Combining Diacritical Marks Supplement
	{0x20D0, 0x20FF}, // Combining Diacritical Marks for Symbols
	{0xFE20, 0xFE2F}, // Combining Half Marks
}

// IsCombiningMark reports whether r falls in one of the Unicode
// combining-diacritical-mark blocks.
func IsCombiningMark(r rune) bool {
	for _, b := range combiningBlocks {
		if r >= b[0] && r <= b[1] {
			return true
		}
	}
	return false
}

// NormalizeCombining composes a trailing run of base-character plus
// combining marks into its NFC form, padding the result back out to the
// original rune count with U+200B ZERO WIDTH SPACE so that rune offsets
// into the returned slice still line up with offsets into the input for
// every position at or after the run.
//
// This mirrors a shaping engine's practice of composing the very end of
// its context window before handing it to the shaper: only the last
// maximal run of combining marks (and the base character preceding it)
// is composed, since that's the boundary most shapers actually need
// fixed up, not the whole string.
func NormalizeCombining(runes []rune) []rune {
	n := len(runes)
	if n == 0 {
		return runes
	}

	// Find the start of the trailing [base][marks...] run.
	end := n
	start := end
	for start > 0 && IsCombiningMark(runes[start-1]) {
		start--
	}
	if start == end {
		return runes // no trailing combining marks
	}
	if start > 0 {
		start-- // include the base character
	}

	composed := norm.NFC.String(string(runes[start:end]))
	composedRunes := []rune(composed)

	out := make([]rune, n)
	copy(out, runes[:start])
	copy(out[start:], composedRunes)
	const zeroWidthSpace = rune(0x200B)
	for i := start + len(composedRunes); i < n; i++ {
		out[i] = zeroWidthSpace
	}
	return out
}
