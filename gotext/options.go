package gotext

// Option configures a Shaper during creation.
type Option func(*config)

// config holds configuration for Shaper.
type config struct {
	fallbackLang string
}

// defaultConfig returns the default shaper configuration.
func defaultConfig() config {
	return config{
		fallbackLang: "en",
	}
}

// WithFallbackLanguage sets the BCP-47 language used when FontParams
// carries no resolvable language index. The default is "en". Empty codes
// are ignored.
func WithFallbackLanguage(code string) Option {
	return func(c *config) {
		if code != "" {
			c.fallbackLang = code
		}
	}
}
