package layoutcache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gotextlayout/textlayout/logging"
)

// ErrCorrupted is panicked when the cache's recency list disagrees with
// its own byte accounting: the budget says an entry must be evicted to
// make room, but the recency list reports none left. Per the design's
// error-handling rules this is a programming error in the cache, not a
// recoverable input problem, so it is fatal rather than returned.
var ErrCorrupted = errors.New("layoutcache: eviction invariant violated on non-empty cache")

// ErrDuplicateInsert is panicked when Insert is called for a key that
// is already present. A correct caller only calls Insert after a missed
// Get, so this indicates two callers raced past a "miss" for the same
// key without the caller serializing around it (see Engine, which holds
// a single lock across the whole get-or-compute-or-insert sequence).
var ErrDuplicateInsert = errors.New("layoutcache: duplicate insert after missed lookup")

// entry is one cached value plus its accounted byte cost. Entries also
// double as nodes of Cache's intrusive recency list — prev/next link
// directly to sibling entries, so there is no separate list-node
// allocation or lookup indirection between "the cached value" and "its
// position in eviction order".
type entry[K comparable, V any] struct {
	key   K
	value V
	size  int64

	prev, next *entry[K, V]
}

// Cache is a byte-budgeted LRU cache. The zero value is not usable;
// construct with New.
//
// Cache is safe for concurrent use, but the design's default
// concurrency model (§5) has Engine hold its own lock across an entire
// get-or-compute-or-insert sequence, so Cache's internal lock mostly
// just protects bookkeeping (hits, time saved) from torn reads by
// diagnostic callers running outside that sequence.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	maxBytes int64
	curBytes int64

	entries map[K]*entry[K, V]

	// most, least are the recency list's head and tail: most is the
	// most recently used entry, least the eviction candidate.
	most, least *entry[K, V]

	elapsedOf func(V) int64
	logger    logging.Logger

	hits           uint64
	timeSavedNanos int64
}

// New creates a Cache with the given byte budget. elapsedOf extracts
// the compute-time-in-nanoseconds a cached value recorded when it was
// built, used to track cumulative time saved on hits; pass nil if the
// cache should not track time-saved diagnostics.
func New[K comparable, V any](maxBytes int64, elapsedOf func(V) int64, opts ...Option) *Cache[K, V] {
	if elapsedOf == nil {
		elapsedOf = func(V) int64 { return 0 }
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cache[K, V]{
		maxBytes:  maxBytes,
		entries:   make(map[K]*entry[K, V]),
		elapsedOf: elapsedOf,
		logger:    cfg.logger,
	}
}

// Get returns the cached value for key, if present, moving it to the
// front of the recency list and updating hit diagnostics.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lookupStart := time.Now()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.moveToFront(e)
	c.hits++
	if saved := c.elapsedOf(e.value) - time.Since(lookupStart).Nanoseconds(); saved > 0 {
		c.timeSavedNanos += saved
	}
	return e.value, true
}

// Insert adds key/value to the cache with the given accounted byte
// size, evicting the oldest entries as needed to stay within budget.
//
// If size exceeds the cache's entire budget, value is not inserted at
// all (the oversize bypass, §4.2.3 / property 7): the caller still gets
// to use the value it computed, but the cache is left untouched.
func (c *Cache[K, V]) Insert(key K, value V, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if size > c.maxBytes {
		return
	}
	if _, exists := c.entries[key]; exists {
		panic(fmt.Errorf("%w: key already present", ErrDuplicateInsert))
	}

	for c.curBytes+size > c.maxBytes {
		oldest := c.least
		if oldest == nil {
			panic(fmt.Errorf("%w: budget requires eviction but recency list is empty", ErrCorrupted))
		}
		if _, ok := c.entries[oldest.key]; !ok {
			panic(fmt.Errorf("%w: recency list names a key absent from the entry map", ErrCorrupted))
		}
		c.unlink(oldest)
		delete(c.entries, oldest.key)
		c.curBytes -= oldest.size
		c.logger.Printf("layoutcache: evicted entry (%d bytes) to admit %d bytes", oldest.size, size)
	}

	e := &entry[K, V]{key: key, value: value, size: size}
	c.pushFront(e)
	c.entries[key] = e
	c.curBytes += size
}

// Purge clears every entry and resets all byte accounting and
// diagnostics to zero.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.most, c.least = nil, nil
	c.curBytes = 0
	c.hits = 0
	c.timeSavedNanos = 0
	c.logger.Printf("layoutcache: purged, budget reset to %d bytes", c.maxBytes)
}

// Stats reports the cache's current size and diagnostic counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:            len(c.entries),
		CurrentBytes:   c.curBytes,
		MaxBytes:       c.maxBytes,
		Hits:           c.hits,
		TimeSavedNanos: c.timeSavedNanos,
	}
}

// CurrentBytes returns the cache's current accounted byte usage.
func (c *Cache[K, V]) CurrentBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.curBytes
}

// Stats is a snapshot of cache size and diagnostic counters. It is
// observability-only, per §4.2.4: nothing in the functional contract
// depends on these values.
type Stats struct {
	Len            int
	CurrentBytes   int64
	MaxBytes       int64
	Hits           uint64
	TimeSavedNanos int64
}

// pushFront inserts e as the most recently used entry. Caller holds c.mu.
func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	if c.most == nil {
		c.most, c.least = e, e
		return
	}
	e.next = c.most
	c.most.prev = e
	c.most = e
}

// moveToFront marks e as the most recently used entry. Caller holds c.mu.
func (c *Cache[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.most {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

// unlink removes e from the recency list without touching c.entries.
// Caller holds c.mu.
func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.most = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.least = e.prev
	}
	e.prev, e.next = nil, nil
}
