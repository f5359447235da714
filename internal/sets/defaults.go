package sets

// Default returns the supported set library. Space-Time Smackdown carries
// explicit overrides: its canonical initials are STS, not the per-word
// derivation SS, and its short name keeps the hyphenated first word.
func Default() Library {
	return NewLibrary(
		Set{
			Name:        "Genetic Apex",
			ExpansionID: "a1",
			Packs: []Pack{
				{Slug: "charizard-pack", Suffix: "C"},
				{Slug: "mewtwo-pack", Suffix: "M"},
				{Slug: "pikachu-pack", Suffix: "P"},
			},
		},
		Set{
			Name:        "Mythical Island",
			ExpansionID: "a1a",
		},
		Set{
			Name:        "Space-Time Smackdown",
			ExpansionID: "a2",
			Initials:    "STS",
			ShortName:   "Space-Time",
			Packs: []Pack{
				{Slug: "dialga-pack", Suffix: "D"},
				{Slug: "palkia-pack", Suffix: "P"},
			},
		},
		Set{
			Name:        "Triumphant Light",
			ExpansionID: "a2a",
		},
		Set{
			Name:        "Shining Revelry",
			ExpansionID: "a2b",
		},
	)
}
