package textlayout

import (
	"sync"
	"time"

	"github.com/gotextlayout/textlayout/fonthost"
	"github.com/gotextlayout/textlayout/layoutcache"
	"github.com/gotextlayout/textlayout/logging"
	"github.com/gotextlayout/textlayout/shape"
)

// DefaultCacheBudgetBytes is a reasonable starting point for
// Engine.EnableCache: a few megabytes, per §4.2.3's deployment-choice
// recommendation. Callers with tighter memory budgets, or many large
// context windows, should size this explicitly instead.
const DefaultCacheBudgetBytes int64 = 4 << 20

// Engine is the facade a host application holds: one Shaper, one
// FontHost, and an optional LayoutCache. GetValue is the sole entry
// point; it routes to the cache when enabled, else shapes directly.
//
// Per §5's default concurrency model, a single lock is held across an
// entire GetValue call — including the shape itself on a cache miss —
// rather than giving the cache and the shaper independent locks. This
// matches the reference design's stated rationale (the Shaper's
// internal buffers are not safe for unsynchronized concurrent use) even
// though this port's Shaper happens to pool its per-call buffers and
// would tolerate finer-grained locking; holding one lock keeps the
// "duplicate insert after missed lookup" race (§7) structurally
// impossible rather than merely unlikely.
//
// Engine does not itself follow the source's process-wide-singleton
// pattern (§9): construct one per host application (or per isolated
// tenant) and pass it to consumers explicitly.
type Engine struct {
	mu     sync.Mutex
	host   *fonthost.FontHost
	shaper *shape.Shaper
	cache  *layoutcache.Cache[LayoutKey, *LayoutValue]
	logger logging.Logger
}

// NewEngine creates an Engine backed by host, applying any Options
// given. host must outlive the Engine; the Engine never takes
// ownership of the typefaces host serves (see fonthost.FontHost and
// the "Ownership of typefaces" design note).
func NewEngine(host *fonthost.FontHost, opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	shaperOpts := append([]shape.Option{shape.WithLogger(cfg.logger)}, cfg.shaperOpts...)
	return &Engine{
		host:   host,
		shaper: shape.New(shaperOpts...),
		logger: cfg.logger,
	}
}

// EnableCache turns on memoization with the given byte budget. Calling
// it again replaces the existing cache (and its contents) with a fresh
// one at the new budget.
func (e *Engine) EnableCache(maxBytes int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = layoutcache.New[LayoutKey, *LayoutValue](maxBytes, func(v *LayoutValue) int64 {
		return v.ElapsedNanos
	}, layoutcache.WithLogger(e.logger))
}

// DisableCache turns memoization back off; GetValue always computes a
// fresh value thereafter.
func (e *Engine) DisableCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = nil
}

// GetValue resolves a layout request, routing through the cache when
// one is enabled. utf16Context is the full context window the run
// lives in (see LayoutKey.Text); start/count select the sub-window to
// actually measure.
//
// The returned *LayoutValue is shared and immutable: holding onto it
// beyond a subsequent purge or eviction remains safe (§3, Lifecycle).
func (e *Engine) GetValue(utf16Context []uint16, start, count int, dir Direction, paint Paint) *LayoutValue {
	key := NewLayoutKey(utf16Context, start, count, dir, paint)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v
		}
	}

	value := e.computeValue(key)

	if e.cache != nil {
		e.cache.Insert(key, value, key.approxSize()+value.approxSize())
	}
	return value
}

// PurgeCaches clears the layout cache (if enabled), the Shaper's
// per-typeface font.Face cache, and the font host's per-typeface
// coverage caches, mirroring §4.2.1's purge() forwarding across every
// cache layer.
func (e *Engine) PurgeCaches() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache != nil {
		e.cache.Purge()
	}
	if e.shaper != nil {
		e.shaper.Purge()
	}
	if e.host != nil {
		e.host.Purge()
	}
}

// computeValue shapes key's run from scratch. Caller holds e.mu.
func (e *Engine) computeValue(key LayoutKey) *LayoutValue {
	start := time.Now()

	context := []rune(key.Text)
	value := &LayoutValue{Advances: make([]float32, len(context))}
	if key.Count == 0 || e.host == nil {
		value.ElapsedNanos = time.Since(start).Nanoseconds()
		return value
	}

	var preferred *fonthost.Typeface
	if key.Paint.TypefaceID != 0 {
		preferred, _ = e.host.Typeface(key.Paint.TypefaceID)
	}

	req := shape.Request{
		Context:    context,
		Start:      key.Start,
		Count:      key.Count,
		SizePx:     key.Paint.SizePx,
		ScaleX:     key.Paint.ScaleX,
		SkewX:      key.Paint.SkewX,
		Language:   key.Paint.Language, // already canonicalized by NewLayoutKey
		ForceLTR:   key.Dir.IsForced() && !key.Dir.IsRTL(),
		ForceRTL:   key.Dir.IsForced() && key.Dir.IsRTL(),
		DefaultRTL: key.Dir.IsRTL() || key.Dir.DefaultsRTL(),
		Host:       e.host,
		Typeface:   preferred,
	}

	result, err := e.shaper.Shape(req)
	if err != nil {
		// Transient shaping failure: return what we have (possibly an
		// all-zero value) rather than fail the call (§7).
		value.ElapsedNanos = time.Since(start).Nanoseconds()
		return value
	}

	value.Advances = result.Advances
	for i := key.Start; i < key.Start+key.Count && i < len(value.Advances); i++ {
		value.TotalAdvance += value.Advances[i]
	}

	value.Glyphs = make([]GlyphID, len(result.Glyphs))
	value.Positions = make([]Point32, len(result.Glyphs))
	for i, g := range result.Glyphs {
		value.Glyphs[i] = GlyphID(g.GID)
		value.Positions[i] = Point32{X: g.X, Y: g.Y}
	}

	value.ElapsedNanos = time.Since(start).Nanoseconds()
	return value
}
