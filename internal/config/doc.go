// Package config loads, normalizes, and validates carddex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: asset and output directories, the card catalog site, the
// match acceptance threshold, the fingerprint cache, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
