package textlayout

import (
	"errors"

	"github.com/gotextlayout/textlayout/layoutcache"
)

// ErrCacheCorrupted is panicked (never returned) when the layout
// cache's own invariants are violated — e.g. eviction is required but
// its recency list reports no entries left to evict. Per the
// error-handling design, this class of failure is a programming error
// in the cache itself, not a recoverable input problem, so it is fatal
// rather than surfaced through an error return. It is an alias for
// layoutcache.ErrCorrupted so callers can match on either name.
var ErrCacheCorrupted = layoutcache.ErrCorrupted

// ErrNoTypeface names the condition in which a FontHost has no typeface
// registered at all, not even a primary one. No function in this module
// returns it: fonthost reports that condition with its own error, and
// Engine.GetValue degrades to a glyph-less LayoutValue per the
// permissive precondition design in §7.
var ErrNoTypeface = errors.New("textlayout: no typeface available")
