package hashcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"carddex/internal/imghash"
	"carddex/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are recreated, not migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Cache stores image-URL to fingerprint mappings in SQLite. A nil Cache is
// valid and caches nothing.
type Cache struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the fingerprint cache database. An empty
// path returns a nil cache (all operations become no-ops).
func Open(path string, logger *slog.Logger) (*Cache, error) {
	if path == "" {
		return nil, nil
	}
	logger = logging.NewComponentLogger(logger, "hashcache")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{db: db, path: path, logger: logger}
	if err := cache.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached fingerprint for an image URL if present.
func (c *Cache) Lookup(ctx context.Context, imageURL string) (imghash.Fingerprint, bool) {
	if c == nil || c.db == nil || imageURL == "" {
		return imghash.Fingerprint{}, false
	}

	var bits int64
	err := c.db.QueryRowContext(ctx,
		"SELECT bits FROM fingerprints WHERE image_url = ?", imageURL,
	).Scan(&bits)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.logger.Debug("cache lookup failed", logging.String("image_url", imageURL), logging.Error(err))
		}
		return imghash.Fingerprint{}, false
	}
	return imghash.FromBits(uint64(bits)), true
}

// Store records the fingerprint for an image URL, replacing any prior value.
func (c *Cache) Store(ctx context.Context, imageURL string, fp imghash.Fingerprint) error {
	if c == nil || c.db == nil {
		return nil
	}
	if imageURL == "" {
		return errors.New("image url cannot be empty")
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO fingerprints (image_url, bits, cached_at) VALUES (?, ?, ?)
         ON CONFLICT(image_url) DO UPDATE SET bits = excluded.bits, cached_at = excluded.cached_at`,
		imageURL,
		int64(fp.Bits()),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store fingerprint: %w", err)
	}
	return nil
}

// Len returns the number of cached fingerprints.
func (c *Cache) Len(ctx context.Context) (int, error) {
	if c == nil || c.db == nil {
		return 0, nil
	}
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM fingerprints").Scan(&count); err != nil {
		return 0, fmt.Errorf("count fingerprints: %w", err)
	}
	return count, nil
}

func (c *Cache) initSchema(ctx context.Context) error {
	var tableExists int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := c.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := c.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, c.path)
	}
	return nil
}
