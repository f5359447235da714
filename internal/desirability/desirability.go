// Package desirability carries hand-curated desirability scores forward from
// a previous database file into a freshly generated one.
package desirability

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"carddex/internal/cards"
	"carddex/internal/logging"
)

// MissingCard describes a scored card from the old database that no longer
// exists in the new one.
type MissingCard struct {
	Key          string
	Name         string
	Desirability int
}

// Summary reports the outcome of a merge.
type Summary struct {
	// Updated counts cards whose desirability was carried over.
	Updated int
	// Total counts cards in the new database.
	Total int
	// Missing lists scored cards absent from the new database.
	Missing []MissingCard
}

// Merge copies nonzero desirability values from the database at oldPath onto
// matching keys in the database at newPath and writes the result to outPath.
// When outPath is empty the new database is updated in place.
func Merge(oldPath, newPath, outPath string, logger *slog.Logger) (Summary, error) {
	log := logging.NewComponentLogger(logger, "desirability")
	if outPath == "" {
		outPath = newPath
	}

	previous, err := readCollection(oldPath)
	if err != nil {
		return Summary{}, err
	}
	current, err := readCollection(newPath)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: current.Len()}
	for _, key := range previous.Keys() {
		old, _ := previous.Get(key)
		if old.Desirability == 0 {
			continue
		}
		record, ok := current.Get(key)
		if !ok {
			summary.Missing = append(summary.Missing, MissingCard{
				Key:          key,
				Name:         old.Name,
				Desirability: old.Desirability,
			})
			continue
		}
		if record.Desirability != old.Desirability {
			record.Desirability = old.Desirability
			current.Put(key, record)
		}
		summary.Updated++
	}

	if err := writeCollection(outPath, current); err != nil {
		return Summary{}, err
	}

	log.Info("desirability merged",
		logging.String("output", outPath),
		logging.Int("updated", summary.Updated),
		logging.Int("missing", len(summary.Missing)))
	return summary, nil
}

func readCollection(path string) (*cards.Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	defer file.Close()

	collection, err := cards.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("parse database %s: %w", path, err)
	}
	return collection, nil
}

func writeCollection(path string, collection *cards.Collection) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	temp := path + ".tmp"
	file, err := os.Create(temp)
	if err != nil {
		return fmt.Errorf("write database %s: %w", path, err)
	}
	if err := collection.Encode(file); err != nil {
		file.Close()
		_ = os.Remove(temp)
		return fmt.Errorf("encode database %s: %w", path, err)
	}
	if _, err := file.WriteString("\n"); err != nil {
		file.Close()
		_ = os.Remove(temp)
		return fmt.Errorf("write database %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("write database %s: %w", path, err)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace database %s: %w", path, err)
	}
	return nil
}
