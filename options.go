package textshape

// ItemizerOption configures an Itemizer during creation.
type ItemizerOption func(*itemizerConfig)

// itemizerConfig holds configuration for Itemizer.
type itemizerConfig struct {
	baseDir Direction
}

// defaultItemizerConfig returns the default itemizer configuration.
func defaultItemizerConfig() itemizerConfig {
	return itemizerConfig{
		baseDir: DirectionLTR, // left-to-right unless strong RTL content dictates otherwise
	}
}

// WithBaseDirection sets the paragraph direction assumed when the text
// contains no strong directional character. The default is DirectionLTR,
// matching the bidi algorithm's LTR-default paragraph level. Strong
// directional content always wins over this setting. Invalid directions
// are ignored.
func WithBaseDirection(d Direction) ItemizerOption {
	return func(c *itemizerConfig) {
		if d.Valid() {
			c.baseDir = d
		}
	}
}
