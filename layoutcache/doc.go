// Package layoutcache implements the byte-budgeted LRU eviction policy
// that backs the layout cache: entries are costed in bytes rather than
// counted, and the oldest entry (by insertion order, refreshed on hit)
// is evicted until a new entry fits within the configured budget.
//
// The cache is generic over key and value; it knows nothing about
// LayoutKey or LayoutValue, only the byte cost its caller assigns to
// each entry at Insert time. Recency order is an intrusive doubly-linked
// list threaded through the entries themselves, the same structure the
// teacher repo uses for its own LRU caches, adapted here into the cache
// rather than kept as a standalone list type.
package layoutcache
