package cards

import (
	"math"
	"testing"
)

func TestSortValue(t *testing.T) {
	strip := []string{"TL", "P"}
	cases := []struct {
		number string
		want   int
	}{
		{"5", 5},
		{"012", 12},
		{"TL3", 3},
		{"P1", 1},
		{"P-10", 10},
		{"", math.MaxInt},
		{"TLP", math.MaxInt},
	}
	for _, tc := range cases {
		if got := SortValue(tc.number, strip); got != tc.want {
			t.Fatalf("SortValue(%q) = %d, want %d", tc.number, got, tc.want)
		}
	}
}

func TestSortValueWithoutStripTokens(t *testing.T) {
	// Non-digit runes are always dropped, tokens or not.
	if got := SortValue("TL3", nil); got != 3 {
		t.Fatalf("SortValue(TL3) = %d, want 3", got)
	}
}
