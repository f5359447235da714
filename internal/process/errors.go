package process

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks set-level aborts: unknown set, missing
	// expansion mapping, missing asset folder.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks per-item network or decode failures.
	ErrTransient = errors.New("transient failure")
	// ErrFormat marks unparseable filenames or detail URLs.
	ErrFormat = errors.New("format error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "processing failure"
	}
	return strings.Join(parts, ": ")
}
