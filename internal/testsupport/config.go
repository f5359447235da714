package testsupport

import (
	"path/filepath"
	"testing"

	"carddex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Cache.Enabled = false
	cfg.Cache.Path = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithCachePath enables the fingerprint cache at the given path.
func WithCachePath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.Enabled = true
		cfg.Cache.Path = path
	}
}

// WithMaxDistance overrides the match acceptance threshold.
func WithMaxDistance(distance int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.MaxDistance = distance
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.AssetsDir)
}
