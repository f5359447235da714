package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeZone(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.AssetsDir, err = expandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Cache.Path) != "" {
		if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
			return fmt.Errorf("cache.path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeZone() error {
	c.Zone.BaseURL = strings.TrimRight(strings.TrimSpace(c.Zone.BaseURL), "/")
	c.Zone.PromoPath = strings.TrimSpace(c.Zone.PromoPath)
	if c.Zone.PromoPath != "" && !strings.HasPrefix(c.Zone.PromoPath, "/") {
		c.Zone.PromoPath = "/" + c.Zone.PromoPath
	}
	if c.Zone.RequestTimeout <= 0 {
		c.Zone.RequestTimeout = defaultZoneTimeout
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if len(c.Matching.NumberStripTokens) == 0 {
		c.Matching.NumberStripTokens = append([]string{}, defaultNumberStripTokens...)
	}
	tokens := c.Matching.NumberStripTokens[:0]
	for _, token := range c.Matching.NumberStripTokens {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	c.Matching.NumberStripTokens = tokens
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
