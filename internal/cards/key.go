package cards

import "strings"

// keySegments is how many underscore-delimited filename segments identify a
// card. Later segments encode non-identity variation (duplicate and alt-art
// counters) and must collapse under one key.
const keySegments = 4

// promoMarker identifies promo card filenames.
const promoMarker = "_90_"

// Key derives the database key for a local image filename: strip one
// leading "c" sentinel if present, then join the first four underscore
// segments. Filenames with fewer than four segments are unrecognized.
func Key(filename string) (string, bool) {
	base := filename
	if strings.HasPrefix(base, "c") {
		base = base[1:]
	}
	parts := strings.Split(base, "_")
	if len(parts) < keySegments {
		return "", false
	}
	return strings.Join(parts[:keySegments], "_"), true
}

// IsPromo reports whether a filename names a promo card.
func IsPromo(filename string) bool {
	return strings.Contains(filename, promoMarker)
}

// RarityCode extracts the rarity code segment from a filename. Filenames
// too short to carry one return the empty code, which maps to rarity 0.
func RarityCode(filename string) string {
	parts := strings.Split(filename, "_")
	if len(parts) <= 5 {
		return ""
	}
	return parts[5]
}
