package sets

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Pack describes one sub-pack of a set. Cards exclusive to a pack get the
// set initials plus the pack suffix as their set code.
type Pack struct {
	// Slug is the pack identifier as it appears in listing URLs,
	// e.g. "charizard-pack".
	Slug string
	// Suffix is the single-letter set-code suffix for pack-exclusive cards.
	Suffix string
}

// ShortName returns the pack's display name: the first hyphen-delimited
// token of the slug, title-cased ("charizard-pack" becomes "Charizard").
func (p Pack) ShortName() string {
	token, _, _ := strings.Cut(p.Slug, "-")
	return titleCaser.String(strings.ToLower(token))
}

// Set describes one card set. Initials and ShortName are declarative
// overrides; when empty the values are derived from Name.
type Set struct {
	Name        string
	ExpansionID string
	Packs       []Pack

	// Initials overrides the derived set initials (one letter per word).
	Initials string
	// ShortName overrides the derived short display name (first word).
	ShortName string
}

// SetInitials returns the set-code initials: the override when present,
// otherwise the first letter of each word of the name, uppercased.
func (s Set) SetInitials() string {
	if s.Initials != "" {
		return s.Initials
	}
	var b strings.Builder
	for _, word := range strings.Fields(s.Name) {
		b.WriteString(strings.ToUpper(word[:1]))
	}
	return b.String()
}

// ShortLabel returns the set's short display name: the override when
// present, otherwise the first word of the full name.
func (s Set) ShortLabel() string {
	if s.ShortName != "" {
		return s.ShortName
	}
	words := strings.Fields(s.Name)
	if len(words) == 0 {
		return s.Name
	}
	return words[0]
}

// PackForURL returns the pack whose slug appears in the given pack URL.
func (s Set) PackForURL(packURL string) (Pack, bool) {
	for _, pack := range s.Packs {
		if strings.Contains(packURL, pack.Slug) {
			return pack, true
		}
	}
	return Pack{}, false
}

// Library is an ordered collection of sets with name lookup.
type Library struct {
	sets  []Set
	index map[string]int
}

// NewLibrary builds a library preserving the given set order.
func NewLibrary(sets ...Set) Library {
	index := make(map[string]int, len(sets))
	for i, s := range sets {
		index[s.Name] = i
	}
	return Library{sets: sets, index: index}
}

// ByName returns the set with the given display name.
func (l Library) ByName(name string) (Set, bool) {
	i, ok := l.index[name]
	if !ok {
		return Set{}, false
	}
	return l.sets[i], true
}

// All returns the sets in configured order.
func (l Library) All() []Set {
	out := make([]Set, len(l.sets))
	copy(out, l.sets)
	return out
}

// Names returns the set display names in configured order.
func (l Library) Names() []string {
	names := make([]string, len(l.sets))
	for i, s := range l.sets {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of configured sets.
func (l Library) Len() int { return len(l.sets) }
