package segment

import "github.com/go-text/typesetting/language"

// ScriptRun is one maximal run of a single resolved script within a
// bidi run, as rune offsets into the logical text.
type ScriptRun struct {
	Start, End int
	Script     language.Script
}

// ScriptRuns splits runes[start:end) into script runs, resolving
// Common and Inherited characters (spaces, punctuation, combining
// marks, digits) into the surrounding concrete script rather than
// treating them as boundaries of their own — matching how a script-run
// iterator such as HarfBuzz's treats them, and grounded on the same
// forward/backward resolution pass used to split text by script in
// other per-rune script segmenters (lacking a native incremental
// next/prev script-run API in go-text/typesetting, this package walks
// runes directly instead).
func ScriptRuns(runes []rune, start, end int) []ScriptRun {
	if start >= end {
		return nil
	}

	raw := make([]language.Script, end-start)
	for i := start; i < end; i++ {
		raw[i-start] = language.LookupScript(runes[i])
	}
	resolved := resolveScripts(raw)

	out := make([]ScriptRun, 0, 4)
	segStart := 0
	cur := resolved[0]
	for i := 1; i < len(resolved); i++ {
		if resolved[i] == cur {
			continue
		}
		out = append(out, ScriptRun{Start: start + segStart, End: start + i, Script: cur})
		segStart = i
		cur = resolved[i]
	}
	out = append(out, ScriptRun{Start: start + segStart, End: end, Script: cur})
	return out
}

// resolveScripts rewrites Common/Inherited entries to the concrete
// script they belong with: a Common or Inherited rune sitting between
// two runs of the same concrete script joins that script; a Common rune
// at a script boundary, or with no concrete neighbor, stays Common.
func resolveScripts(scripts []language.Script) []language.Script {
	resolved := make([]language.Script, len(scripts))
	copy(resolved, scripts)

	last := language.Common
	for i := range resolved {
		switch resolved[i] {
		case language.Inherited:
			resolved[i] = last
		case language.Common:
			// resolved below, once we know the next concrete script too
		default:
			last = resolved[i]
		}
	}

	last = language.Common
	for i := range resolved {
		if resolved[i] != language.Common {
			last = resolved[i]
			continue
		}
		next := nextConcreteScript(resolved, i+1)
		resolved[i] = resolveCommon(last, next)
	}
	return resolved
}

func nextConcreteScript(scripts []language.Script, start int) language.Script {
	for j := start; j < len(scripts); j++ {
		if scripts[j] != language.Common {
			return scripts[j]
		}
	}
	return language.Common
}

func resolveCommon(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common && prev == next:
		return prev
	case prev != language.Common && next == language.Common:
		return prev
	case prev == language.Common && next != language.Common:
		return next
	default:
		return language.Common
	}
}

// IsComplexScript reports whether s needs a fallback search before
// shaping. Common, Greek, Cyrillic, Hangul, and Inherited are treated
// as "simple": a font that merely claims to support one of them can be
// trusted without checking glyph coverage first. Every other script is
// "complex" and gets its coverage checked against the paint's typeface,
// falling back to another typeface in the chain when it comes up
// short (matching isComplexScript in the reference layout cache).
func IsComplexScript(s language.Script) bool {
	switch s {
	case language.Common, language.Greek, language.Cyrillic, language.Hangul, language.Inherited:
		return false
	default:
		return true
	}
}
