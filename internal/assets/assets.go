// Package assets lists and decodes the local card images for a set. A set's
// images live in one sub-folder of the assets directory, named after the
// set; the folder's absence aborts that set's processing.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carddex/internal/imghash"
)

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

// Store reads local card images grouped by set name.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the assets directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the folder holding a set's images.
func (s *Store) Dir(setName string) string {
	return filepath.Join(s.baseDir, setName)
}

// List returns the set's image filenames in lexical order. A missing folder
// is reported as an error so the caller can abort the set.
func (s *Store) List(setName string) ([]string, error) {
	dir := s.Dir(setName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list assets %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Fingerprint opens a set image and computes its perceptual fingerprint.
func (s *Store) Fingerprint(setName, filename string) (imghash.Fingerprint, error) {
	path := filepath.Join(s.Dir(setName), filename)
	file, err := os.Open(path)
	if err != nil {
		return imghash.Fingerprint{}, fmt.Errorf("open asset: %w", err)
	}
	defer file.Close()

	fp, err := imghash.FromReader(file)
	if err != nil {
		return imghash.Fingerprint{}, fmt.Errorf("fingerprint %s: %w", filename, err)
	}
	return fp, nil
}
