package shape

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gotextlayout/textlayout/fonthost"
)

func newTestHost(t *testing.T) *fonthost.FontHost {
	t.Helper()
	h := fonthost.NewFontHost()
	if _, err := h.AddTypeface(goregular.TTF); err != nil {
		t.Fatalf("AddTypeface: %v", err)
	}
	return h
}

func TestShapeEmptyCount(t *testing.T) {
	s := New()
	result, err := s.Shape(Request{
		Context: []rune("hello"),
		Start:   1, Count: 0,
		SizePx: 16,
		Host:   newTestHost(t),
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(result.Advances) != 5 {
		t.Fatalf("len(Advances) = %d, want 5", len(result.Advances))
	}
	if len(result.Glyphs) != 0 {
		t.Fatalf("len(Glyphs) = %d, want 0 for an empty run", len(result.Glyphs))
	}
}

func TestShapeNoHost(t *testing.T) {
	s := New()
	result, err := s.Shape(Request{
		Context: []rune("hello"),
		Start:   0, Count: 5,
		SizePx: 16,
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(result.Glyphs) != 0 {
		t.Fatal("Shape with a nil Host should produce no glyphs")
	}
}

func TestShapeLTRProducesMonotonicPositions(t *testing.T) {
	s := New()
	result, err := s.Shape(Request{
		Context: []rune("Hello"),
		Start:   0, Count: 5,
		SizePx: 16,
		Host:   newTestHost(t),
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(result.Glyphs) == 0 {
		t.Fatal("expected glyphs for \"Hello\"")
	}
	for i := 1; i < len(result.Glyphs); i++ {
		if result.Glyphs[i].X < result.Glyphs[i-1].X {
			t.Errorf("glyph %d at X=%v precedes glyph %d at X=%v: positions should be non-decreasing for LTR", i, result.Glyphs[i].X, i-1, result.Glyphs[i-1].X)
		}
	}
}

func TestWithDefaultLanguageAppliesWhenRequestLanguageEmpty(t *testing.T) {
	// Exercises the option plumbing end to end: a Shaper configured with
	// a non-default language still shapes successfully when a Request
	// leaves Language empty.
	s := New(WithDefaultLanguage("ja"))
	result, err := s.Shape(Request{
		Context: []rune("Hello"),
		Start:   0, Count: 5,
		SizePx: 16,
		Host:   newTestHost(t),
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(result.Glyphs) == 0 {
		t.Fatal("expected glyphs even with a non-English default language")
	}
}

func TestFaceForCachesPerTypeface(t *testing.T) {
	s := New()
	host := newTestHost(t)
	tf, _ := host.Primary()

	a := s.faceFor(tf)
	b := s.faceFor(tf)
	if a != b {
		t.Fatal("faceFor should return the same cached face on repeated calls")
	}

	s.Purge()
	c := s.faceFor(tf)
	if c == a {
		t.Fatal("faceFor should rebuild a fresh face after Purge")
	}
}

func TestShapeSimpleScriptUsesPreferredTypefaceDirectly(t *testing.T) {
	// Cyrillic is a "simple" script (segment.IsComplexScript reports
	// false): shapeScriptRun must shape with the preferred typeface
	// itself, never silently promoting to the host's primary or running
	// a coverage-based fallback search.
	h := fonthost.NewFontHost()
	if _, err := h.AddTypeface(goregular.TTF); err != nil {
		t.Fatalf("AddTypeface: %v", err)
	}
	preferred, err := h.AddTypeface(goregular.TTF)
	if err != nil {
		t.Fatalf("AddTypeface: %v", err)
	}

	s := New()
	result, err := s.Shape(Request{
		Context: []rune("Ш"), // U+0428, Cyrillic
		Start:   0, Count: 1,
		SizePx:   16,
		Host:     h,
		Typeface: preferred,
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	if len(result.Glyphs) == 0 {
		t.Fatal("expected at least one glyph")
	}
	if base := preferred.BaseGlyphCount(); result.Glyphs[0].GID < base {
		t.Errorf("Glyphs[0].GID = %d, want >= %d (preferred typeface's namespace, not the host's primary)", result.Glyphs[0].GID, base)
	}
}

func TestShapeRunStartOffsetsIntoContext(t *testing.T) {
	s := New()
	host := newTestHost(t)
	result, err := s.Shape(Request{
		Context: []rune("abcdef"),
		Start:   2, Count: 2, // "cd"
		SizePx: 16,
		Host:   host,
	})
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	for i, a := range result.Advances {
		if (i < 2 || i >= 4) && a != 0 {
			t.Errorf("Advances[%d] = %v, want 0 (outside requested run)", i, a)
		}
	}
}
