package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultAssetsDir      = "assets"
	defaultOutputDir      = "."
	defaultLogDir         = "~/.local/share/carddex/logs"
	defaultZoneBaseURL    = "https://www.pokemon-zone.com"
	defaultZonePromoPath  = "/sets/promo-a/"
	defaultZoneTimeout    = 30
	defaultMaxDistance    = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultCacheEnabled   = true
	defaultCacheFile      = "fingerprints.db"
)

// defaultNumberStripTokens are the literal substrings removed from card
// numbers before numeric sorting ("TL3" sorts as 3, "P1" as 1).
var defaultNumberStripTokens = []string{"TL", "P"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir: defaultAssetsDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Zone: Zone{
			BaseURL:        defaultZoneBaseURL,
			PromoPath:      defaultZonePromoPath,
			RequestTimeout: defaultZoneTimeout,
		},
		Matching: Matching{
			MaxDistance:       defaultMaxDistance,
			NumberStripTokens: append([]string{}, defaultNumberStripTokens...),
		},
		Cache: Cache{
			Enabled: defaultCacheEnabled,
			Path:    defaultCachePath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "carddex", defaultCacheFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".cache", "carddex", defaultCacheFile)
	}
	return filepath.Join(home, ".cache", "carddex", defaultCacheFile)
}
