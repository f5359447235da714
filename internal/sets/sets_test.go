package sets

import "testing"

func TestSetInitialsDerivedFromName(t *testing.T) {
	set := Set{Name: "Genetic Apex"}
	if got := set.SetInitials(); got != "GA" {
		t.Fatalf("unexpected initials: %s", got)
	}
}

func TestSetInitialsOverride(t *testing.T) {
	set, ok := Default().ByName("Space-Time Smackdown")
	if !ok {
		t.Fatalf("set missing")
	}
	if got := set.SetInitials(); got != "STS" {
		t.Fatalf("unexpected initials: %s", got)
	}
	if got := set.ShortLabel(); got != "Space-Time" {
		t.Fatalf("unexpected short label: %s", got)
	}
}

func TestShortLabelFirstWord(t *testing.T) {
	set := Set{Name: "Genetic Apex"}
	if got := set.ShortLabel(); got != "Genetic" {
		t.Fatalf("unexpected short label: %s", got)
	}
}

func TestPackShortName(t *testing.T) {
	pack := Pack{Slug: "charizard-pack", Suffix: "C"}
	if got := pack.ShortName(); got != "Charizard" {
		t.Fatalf("unexpected pack name: %s", got)
	}
}

func TestPackForURL(t *testing.T) {
	set, ok := Default().ByName("Genetic Apex")
	if !ok {
		t.Fatalf("set missing")
	}
	pack, ok := set.PackForURL("/sets/a1/packs/mewtwo-pack/")
	if !ok {
		t.Fatalf("expected pack match")
	}
	if pack.Suffix != "M" {
		t.Fatalf("unexpected suffix: %s", pack.Suffix)
	}
	if _, ok := set.PackForURL("/sets/a1/packs/eevee-pack/"); ok {
		t.Fatalf("expected no match for unknown pack")
	}
}

func TestLibraryLookupAndOrder(t *testing.T) {
	library := Default()
	names := library.Names()
	if len(names) == 0 || names[0] != "Genetic Apex" {
		t.Fatalf("unexpected set order: %v", names)
	}
	if _, ok := library.ByName("Unknown Set"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestRarityTiers(t *testing.T) {
	cases := map[string]int{
		"C":   1,
		"RR":  4,
		"SAR": 7,
		"UR":  9,
		"IR":  12,
		"":    0,
		"XX":  0,
	}
	for code, want := range cases {
		if got := Rarity(code); got != want {
			t.Fatalf("Rarity(%q) = %d, want %d", code, got, want)
		}
	}
}
