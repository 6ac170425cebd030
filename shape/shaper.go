package shape

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gotextlayout/textlayout/fonthost"
	"github.com/gotextlayout/textlayout/logging"
	"github.com/gotextlayout/textlayout/segment"
)

// Request describes one run to shape, already carrying the context
// window it should be shaped within.
type Request struct {
	// Context is the full context window (e.g. a line of text), used
	// so shaping can see characters surrounding the requested run for
	// combining-mark composition and correct cluster boundaries.
	Context []rune

	// Start and Count select the run within Context that output
	// glyphs/advances actually belong to; Advances in the Result is
	// still sized to len(Context).
	Start, Count int

	SizePx   float32
	ScaleX   float32 // horizontal synthetic scale; 0 is treated as 1
	SkewX    float32 // synthetic italic shear applied as x += yOffset*SkewX
	Language string  // BCP-47; empty means the Shaper's default language

	ForceLTR, ForceRTL, DefaultRTL bool

	Host     *fonthost.FontHost
	Typeface *fonthost.Typeface // preferred typeface; nil means host.Primary()
}

// Shaper drives go-text/typesetting's HarfBuzz port across the bidi and
// script runs of a Request.
//
// The HarfbuzzShaper instances it drives come from a sync.Pool, so
// concurrent calls never contend on a single shaper's internal buffers.
// Per-typeface font.Face values are cached in facesByTypeface, keyed by
// typeface ID (§4.1.5): building a font.Face parses the font's hmtx/cmap
// tables into a usable shaping face, which is wasted work to repeat on
// every call for a typeface a caller shapes against repeatedly. Caching
// it here is only safe because nothing hands out two concurrent Shape
// calls against the same Shaper without serializing them first; the
// engine facade in this module's root package does that with a single
// mutex held across the whole GetValue call, so a cached font.Face is
// never touched by two goroutines at once. A Shaper used directly,
// outside that facade, must apply the same discipline itself.
type Shaper struct {
	pool sync.Pool

	facesMu         sync.Mutex
	facesByTypeface map[uint64]*font.Face

	defaultLanguage string
	logger          logging.Logger
}

// New creates a Shaper, applying any Options given.
func New(opts ...Option) *Shaper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shaper{
		pool:            sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		facesByTypeface: make(map[uint64]*font.Face),
		defaultLanguage: cfg.defaultLanguage,
		logger:          cfg.logger,
	}
}

// Purge drops every cached font.Face, releasing their glyph caches. It
// does not affect the sync.Pool of HarfbuzzShaper instances, which hold
// no typeface-specific state.
func (s *Shaper) Purge() {
	s.facesMu.Lock()
	defer s.facesMu.Unlock()
	n := len(s.facesByTypeface)
	s.facesByTypeface = make(map[uint64]*font.Face)
	s.logger.Printf("shape: purged %d cached faces", n)
}

// faceFor returns the cached font.Face for tf, building and caching one
// on first use.
func (s *Shaper) faceFor(tf *fonthost.Typeface) *font.Face {
	s.facesMu.Lock()
	defer s.facesMu.Unlock()
	if f, ok := s.facesByTypeface[tf.ID()]; ok {
		return f
	}
	f := tf.Face()
	s.facesByTypeface[tf.ID()] = f
	return f
}

// Shape computes the Result for req.
func (s *Shaper) Shape(req Request) (Result, error) {
	result := Result{Advances: make([]float32, len(req.Context))}
	if req.Count == 0 || req.Host == nil {
		return result, nil
	}

	normalized := segment.NormalizeCombining(req.Context)

	var bidiRuns []segment.BidiRun
	switch {
	case req.ForceLTR:
		bidiRuns = segment.ForceLTRRun(string(normalized))
	case req.ForceRTL:
		bidiRuns = segment.ResolveBidiRuns(string(normalized), true, req.DefaultRTL)
	default:
		bidiRuns = segment.ResolveBidiRuns(string(normalized), false, req.DefaultRTL)
	}

	segment.MirrorRTL(normalized, bidiRuns)

	langTag := req.Language
	if langTag == "" {
		langTag = s.defaultLanguage
	}
	lang := language.NewLanguage(langTag)

	// pen tracks the running origin across every bidi/script run in this
	// request, so a run's glyphs start where the previous run's ended
	// (§4.1.3 step 7: "starting from the running x = totalAdvance")
	// rather than each run resetting to the request's origin.
	var pen pen
	for _, br := range bidiRuns {
		runStart, runEnd := intersect(br.Start, br.End, req.Start, req.Start+req.Count)
		if runStart >= runEnd {
			continue
		}
		for _, sr := range segment.ScriptRuns(normalized, runStart, runEnd) {
			// A permanently failing script run (no usable typeface, or
			// the shaper producing nothing) is skipped silently; the
			// remaining runs still get shaped. See §7, "Shaper
			// permanent failure".
			s.shapeScriptRun(req, normalized, sr, br.RTL, lang, &result, &pen)
		}
	}

	return result, nil
}

// pen is the running glyph-emission origin, carried across script runs
// within a single Shape call.
type pen struct{ x, y float32 }

// intersect clamps [aStart,aEnd) to overlap with [bStart,bEnd).
func intersect(aStart, aEnd, bStart, bEnd int) (int, int) {
	if aStart < bStart {
		aStart = bStart
	}
	if aEnd > bEnd {
		aEnd = bEnd
	}
	return aStart, aEnd
}

func (s *Shaper) shapeScriptRun(req Request, text []rune, sr segment.ScriptRun, rtl bool, lang language.Language, result *Result, pn *pen) {
	var tf *fonthost.Typeface
	var err error
	if segment.IsComplexScript(sr.Script) {
		// Complex scripts get a coverage-checked fallback search: the
		// paint's typeface is used as-is if it already covers the run's
		// first code point, otherwise another typeface in the chain
		// takes over.
		tf, err = req.Host.Resolve(req.Typeface, text[sr.Start])
		if err != nil {
			// No typeface can be resolved at all (not even a fallback or
			// the default): skip this run rather than fail the whole
			// request (§7).
			return
		}
	} else {
		// Simple scripts always use the paint's own typeface, with no
		// coverage check and no fallback search.
		tf = req.Typeface
		if tf == nil {
			tf, err = req.Host.Primary()
			if err != nil {
				return
			}
		}
	}

	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  sr.Start,
		RunEnd:    sr.End,
		Direction: dir,
		Face:      s.faceFor(tf),
		Size:      floatToFixed(req.SizePx),
		Script:    sr.Script,
		Language:  lang,
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	if len(output.Glyphs) == 0 {
		// Shaper permanent failure: num_glyphs == 0 (§7).
		return
	}

	scaleX := req.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}

	base := tf.BaseGlyphCount()
	// go-text's HarfbuzzShaper, like the HarfBuzz library it ports,
	// already emits output.Glyphs in visual (left-to-right draw) order
	// for both directions, unlike a shaper that returns glyphs in
	// logical order and leaves reversal to the caller. So no manual
	// reverse-for-RTL pass is needed here (contrast §4.1.3 step 6).
	for _, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance) * scaleX
		xo := fixedToFloat(g.XOffset) * scaleX
		yo := fixedToFloat(g.YOffset)

		result.Glyphs = append(result.Glyphs, Glyph{
			GID:     base + uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       pn.x + xo + yo*req.SkewX,
			Y:       pn.y + yo,
		})

		cluster := g.TextIndex()
		if cluster >= 0 && cluster < len(result.Advances) {
			result.Advances[cluster] += adv
		}

		if dir.IsVertical() {
			pn.y += adv
		} else {
			pn.x += adv
		}
	}
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
