package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateZone(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.AssetsDir) == "" {
		return fmt.Errorf("paths.assets_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return fmt.Errorf("paths.output_dir must not be empty")
	}
	return nil
}

func (c *Config) validateZone() error {
	if c.Zone.BaseURL == "" {
		return fmt.Errorf("zone.base_url must not be empty")
	}
	parsed, err := url.Parse(c.Zone.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("zone.base_url %q is not an absolute URL", c.Zone.BaseURL)
	}
	if c.Zone.PromoPath == "" {
		return fmt.Errorf("zone.promo_path must not be empty")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MaxDistance < 0 || c.Matching.MaxDistance > 64 {
		return fmt.Errorf("matching.max_distance must be between 0 and 64, got %d", c.Matching.MaxDistance)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
