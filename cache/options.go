package cache

// Option configures a cache during creation.
type Option func(*config)

// config holds configuration for ShapedRuns.
type config struct {
	capacity int
}

// defaultConfig returns the default cache configuration.
func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the maximum entries per shard. Total capacity is
// approximately the per-shard capacity times DefaultShardCount. Values
// below 1 keep DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}
