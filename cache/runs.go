package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/MortalEngineXXII/textshape"
	"github.com/go-text/typesetting/language"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// RunKey identifies one shaped run in the cache. Every parameter that
// affects shaping output must be part of the key.
type RunKey struct {
	// TextHash is the FNV-1a hash of the run's UTF-16 window.
	TextHash uint64

	// Font and PixelSize mirror the FontParams handed to the shaper.
	Font      textshape.FontID
	PixelSize int32

	// Script and Direction mirror the TextRun.
	Script    language.Script
	Direction textshape.Direction

	// Lang is the numeric language index from FontParams.
	Lang textshape.Lang
}

// NewRunKey creates a RunKey from a run, its UTF-16 window, and the
// shaping parameters. This is the canonical way to create cache keys; the
// window must be the same slice handed to ShapeRun.
func NewRunKey(run textshape.TextRun, text []uint16, params textshape.FontParams) RunKey {
	return RunKey{
		TextHash:  hashUnits(text),
		Font:      params.Font,
		PixelSize: int32(params.PixelSize), //nolint:gosec // pixel sizes are small
		Script:    run.Script,
		Direction: run.Direction,
		Lang:      params.Lang,
	}
}

// hashUnits computes the FNV-1a hash of a UTF-16 window.
// FNV-1a is fast and has good distribution for text keys.
func hashUnits(units []uint16) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		buf[2*i] = byte(u)
		buf[2*i+1] = byte(u >> 8)
	}
	_, _ = h.Write(buf) // fnv.Write never returns an error
	return h.Sum64()
}

// keyHash computes a hash of the RunKey for shard selection.
// Uses FNV-1a with all key fields.
func (k *RunKey) keyHash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8+2+4+4+1+1) // 20 bytes total
	// TextHash (8 bytes)
	buf[0] = byte(k.TextHash)
	buf[1] = byte(k.TextHash >> 8)
	buf[2] = byte(k.TextHash >> 16)
	buf[3] = byte(k.TextHash >> 24)
	buf[4] = byte(k.TextHash >> 32)
	buf[5] = byte(k.TextHash >> 40)
	buf[6] = byte(k.TextHash >> 48)
	buf[7] = byte(k.TextHash >> 56)
	// Font (2 bytes)
	buf[8] = byte(k.Font)
	buf[9] = byte(uint16(k.Font) >> 8) //nolint:gosec // int16 bit pattern
	// PixelSize (4 bytes)
	buf[10] = byte(k.PixelSize)
	buf[11] = byte(k.PixelSize >> 8)
	buf[12] = byte(k.PixelSize >> 16)
	buf[13] = byte(k.PixelSize >> 24)
	// Script (4 bytes)
	buf[14] = byte(k.Script)
	buf[15] = byte(k.Script >> 8)
	buf[16] = byte(k.Script >> 16)
	buf[17] = byte(k.Script >> 24)
	// Direction (1 byte)
	buf[18] = byte(k.Direction)
	// Lang (1 byte)
	buf[19] = byte(k.Lang)

	_, _ = h.Write(buf)
	return h.Sum64()
}

// ShapedRuns is a thread-safe, sharded LRU cache of shaped runs.
//
// Features:
//   - 16 shards for reduced lock contention
//   - LRU eviction with configurable capacity per shard
//   - Thread-safe for concurrent access
//   - Atomic statistics for monitoring
//   - Zero allocations on cache hit
type ShapedRuns struct {
	shards   [DefaultShardCount]*runShard
	capacity int // Per-shard capacity

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// runShard is a single shard of the cache.
// Each shard has its own mutex for reduced contention.
type runShard struct {
	mu      sync.RWMutex
	entries map[RunKey]*runEntry
	lru     *lruList[RunKey]
}

// runEntry holds a cached run with its LRU node.
type runEntry struct {
	value textshape.ShapedRun
	node  *lruNode[RunKey]
}

// NewShapedRuns creates a cache. Total capacity is approximately the
// per-shard capacity times DefaultShardCount (16).
func NewShapedRuns(opts ...Option) *ShapedRuns {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &ShapedRuns{capacity: cfg.capacity}
	for i := range c.shards {
		c.shards[i] = &runShard{
			entries: make(map[RunKey]*runEntry),
			lru:     newLRUList[RunKey](),
		}
	}
	return c
}

// getShard returns the shard for a given key.
// Uses bitwise AND for fast modulo (only works with power-of-2 shard count).
func (c *ShapedRuns) getShard(key *RunKey) *runShard {
	hash := key.keyHash()
	return c.shards[hash&shardMask]
}

// Get retrieves a cached run by key.
// Returns (run, true) if found, (zero, false) otherwise.
//
// On cache hit, the entry is moved to the front of the LRU list.
func (c *ShapedRuns) Get(key RunKey) (textshape.ShapedRun, bool) {
	shard := c.getShard(&key)

	// Fast path: read lock to check existence
	shard.mu.RLock()
	_, exists := shard.entries[key]
	shard.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return textshape.ShapedRun{}, false
	}

	// Slow path: write lock for LRU update
	shard.mu.Lock()
	// Re-check after acquiring write lock (entry may have been evicted)
	entry, ok := shard.entries[key]
	if !ok {
		shard.mu.Unlock()
		c.misses.Add(1)
		return textshape.ShapedRun{}, false
	}
	shard.lru.MoveToFront(entry.node)
	value := entry.value
	shard.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a run in the cache.
// If the shard exceeds capacity after insertion, oldest entries are evicted.
//
// The run's glyph slice is stored as-is (not copied). Callers must not
// modify the glyphs after caching.
func (c *ShapedRuns) Set(key RunKey, value textshape.ShapedRun) {
	shard := c.getShard(&key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	// Check if entry already exists
	if existing, ok := shard.entries[key]; ok {
		existing.value = value
		shard.lru.MoveToFront(existing.node)
		return
	}

	// Evict if at capacity
	for shard.lru.Len() >= c.capacity {
		if oldest, ok := shard.lru.RemoveOldest(); ok {
			delete(shard.entries, oldest)
			c.evictions.Add(1)
		} else {
			break
		}
	}

	node := shard.lru.PushFront(key)
	shard.entries[key] = &runEntry{
		value: value,
		node:  node,
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *ShapedRuns) Delete(key RunKey) bool {
	shard := c.getShard(&key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok {
		return false
	}
	shard.lru.Remove(entry.node)
	delete(shard.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *ShapedRuns) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[RunKey]*runEntry)
		shard.lru.Clear()
		shard.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShapedRuns) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShapedRuns) Capacity() int {
	return c.capacity
}

// TotalCapacity returns the total capacity across all shards.
func (c *ShapedRuns) TotalCapacity() int {
	return c.capacity * DefaultShardCount
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (c *ShapedRuns) ShardLen() [DefaultShardCount]int {
	var lens [DefaultShardCount]int
	for i, shard := range c.shards {
		shard.mu.RLock()
		lens[i] = len(shard.entries)
		shard.mu.RUnlock()
	}
	return lens
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// TotalCapacity is the total capacity across all shards.
	TotalCapacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
	// Evictions is the number of entries evicted.
	Evictions uint64
}

// Stats returns current cache statistics.
// This operation is mostly lock-free (atomic counters).
func (c *ShapedRuns) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * DefaultShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *ShapedRuns) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
