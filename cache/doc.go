// Package cache provides a sharded LRU cache for shaped runs.
//
// # ShapedRuns
//
// A high-performance sharded cache keyed by everything that affects
// shaping output: the run's UTF-16 window (hashed), font, pixel size,
// script, direction, and language. Uses 16 shards to reduce lock
// contention, with LRU eviction per shard and atomic hit/miss/eviction
// counters.
//
//	runs := cache.NewShapedRuns(cache.WithCapacity(512))
//	runs.Set(key, shaped)
//	shaped, ok := runs.Get(key)
//
// # Shaper
//
// A textshape.RunShaper decorator with get-or-shape semantics. Render
// loops that shape the same lines every frame wrap their backend once and
// keep the rest of the pipeline unchanged:
//
//	shaper := cache.NewShaper(gotext.NewShaper())
//	m, err := textshape.ShapeText(line, params, shaper)
//
// Shaping backends are deterministic, so a cached run is
// indistinguishable from a freshly shaped one.
//
// # Thread Safety
//
// ShapedRuns and Shaper are safe for concurrent use. Neither should be
// copied after creation (they contain mutexes).
package cache
