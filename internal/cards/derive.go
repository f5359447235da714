package cards

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"carddex/internal/sets"
)

// promoExpansionID is the expansion identifier recorded for promo cards.
const promoExpansionID = "Promo-a"

// unobtainableTiers are the rarity tiers that cannot be acquired through
// standard gameplay: immersive, crown, and the shiny variants.
var unobtainableTiers = map[int]struct{}{
	8: {}, 9: {}, 10: {}, 11: {}, 12: {},
}

var titleCaser = cases.Title(language.Und)

// MatchContext carries the catalog facts the deriver needs about a matched
// card: which detail page it came from and how it sits in the set's pack
// structure.
type MatchContext struct {
	DetailURL    string
	Promo        bool
	PackSpecific bool
	PackURL      string
}

// Derive produces the normalized record for a matched local image.
// The filename supplies the rarity code; the detail URL supplies the card
// number and display name; the set configuration and pack structure decide
// the set code and short name.
func Derive(filename string, match MatchContext, set sets.Set) (Record, error) {
	number, slug, err := parseDetailURL(match.DetailURL)
	if err != nil {
		return Record{}, err
	}

	rarity := sets.Rarity(RarityCode(filename))
	initials := set.SetInitials()

	var setCode, setName string
	switch {
	case match.Promo:
		setCode = initials
		setName = set.ShortLabel()
	case match.PackSpecific:
		if pack, ok := set.PackForURL(match.PackURL); ok {
			setCode = initials + pack.Suffix
			setName = pack.ShortName()
		} else {
			setCode = initials
			setName = set.ShortLabel()
		}
	default:
		setCode = initials
		setName = set.ShortLabel()
	}

	expansionID := promoExpansionID
	if !match.Promo {
		expansionID = capitalize(set.ExpansionID)
	}

	return Record{
		Number:      number,
		Name:        FormatSlug(slug),
		Rarity:      rarity,
		Set:         setCode,
		SetName:     setName,
		SetBaseName: set.Name,
		ExpansionID: expansionID,
		Obtainable:  obtainable(rarity, match.Promo),
	}, nil
}

// FormatSlug converts a card name slug to its display name: hyphen tokens
// title-cased and joined with spaces, with the EX tier marker uppercased.
func FormatSlug(slug string) string {
	parts := strings.Split(slug, "-")
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "ex" {
			formatted = append(formatted, "EX")
			continue
		}
		formatted = append(formatted, titleCaser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}

// parseDetailURL extracts the card number and name slug from a detail page
// URL of the form .../cards/<ignored>/<number>/<slug>/.
func parseDetailURL(detailURL string) (number, slug string, err error) {
	parsed, err := url.Parse(detailURL)
	if err != nil {
		return "", "", fmt.Errorf("parse card url %q: %w", detailURL, err)
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")

	cardsIdx := -1
	for i, part := range parts {
		if part == "cards" {
			cardsIdx = i
			break
		}
	}
	if cardsIdx < 0 || len(parts)-cardsIdx-1 < 3 {
		return "", "", fmt.Errorf("invalid card url format: %s", detailURL)
	}
	after := parts[cardsIdx+1:]
	return after[1], after[2], nil
}

func obtainable(rarity int, promo bool) bool {
	if promo {
		return false
	}
	_, unobtainable := unobtainableTiers[rarity]
	return !unobtainable
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
