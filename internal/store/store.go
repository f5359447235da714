// Package store writes finished card collections to the JSON database files
// in the output directory. Writes are atomic (temp file plus rename) and
// guarded by a lock file so two runs cannot interleave output.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"carddex/internal/cards"
	"carddex/internal/logging"
)

const (
	// PromoDatabaseName is the per-set promo database file.
	PromoDatabaseName = "Promo_Cards_Database.json"
	// FullDatabaseName is the cross-set regular database file.
	FullDatabaseName = "Full_Cards_Database.json"
	// FullPromoDatabaseName is the cross-set promo database file.
	FullPromoDatabaseName = "TCGP_Promo_Cards_Database.json"

	lockFileName = ".carddex.lock"
)

// SetDatabaseName returns the per-set regular database filename for a set's
// initials.
func SetDatabaseName(initials string) string {
	return initials + "_Cards_Database.json"
}

// Sink persists collections into one output directory.
type Sink struct {
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewSink creates a sink for the output directory.
func NewSink(dir string, logger *slog.Logger) *Sink {
	return &Sink{
		dir:    dir,
		lock:   flock.New(filepath.Join(dir, lockFileName)),
		logger: logging.NewComponentLogger(logger, "store"),
	}
}

// Write stores a collection under the given database filename.
func (s *Sink) Write(name string, collection *cards.Collection) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return errors.New("another carddex run is writing to the output directory")
	}
	defer func() { _ = s.lock.Unlock() }()

	var buf bytes.Buffer
	if err := collection.Encode(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	buf.WriteByte('\n')

	target := filepath.Join(s.dir, name)
	temp := target + ".tmp"
	if err := os.WriteFile(temp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(temp, target); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace %s: %w", name, err)
	}

	s.logger.Info("database written",
		logging.String("file", target),
		logging.Int("records", collection.Len()))
	return nil
}
