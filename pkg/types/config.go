package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubgrab/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RegistryConfig holds settings for the CRISTIN registry client.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CacheConfig holds settings for the on-disk fetch cache.
type CacheConfig struct {
	// Enabled controls whether registry responses are memoized on disk.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the cache database location. Empty means the default
	// location under the user cache directory.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// BuildConfig holds default settings for bibliography builds.
type BuildConfig struct {
	// FromYear and ToYear bound the publication years, inclusive.
	FromYear int `json:"from_year" yaml:"from_year"`
	ToYear   int `json:"to_year" yaml:"to_year"`

	// Category is the registry publication category code. Only journal
	// articles (TIDSSKRIFTPUBL) are supported.
	Category string `json:"category" yaml:"category"`
}

// Config groups all stage configurations.
type Config struct {
	Registry RegistryConfig `json:"registry" yaml:"registry"`
	Cache    CacheConfig    `json:"cache" yaml:"cache"`
	Build    BuildConfig    `json:"build" yaml:"build"`
}
