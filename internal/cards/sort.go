package cards

import (
	"math"
	"strconv"
	"strings"
)

// SortValue reduces a card number to its numeric sort key: the configured
// literal tokens are stripped, then any remaining non-digit runes, and the
// digits are parsed. Numbers with no digits at all sort last.
func SortValue(number string, stripTokens []string) int {
	stripped := number
	for _, token := range stripTokens {
		stripped = strings.ReplaceAll(stripped, token, "")
	}

	var digits strings.Builder
	for _, r := range stripped {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return math.MaxInt
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return math.MaxInt
	}
	return value
}
