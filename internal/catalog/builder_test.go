package catalog_test

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"carddex/internal/catalog"
	"carddex/internal/hashcache"
	"carddex/internal/imghash"
	"carddex/internal/logging"
	"carddex/internal/sets"
	"carddex/internal/testsupport"
	"carddex/internal/zone"
)

func twoPackSet() sets.Set {
	return sets.Set{
		Name:        "Test Apex",
		ExpansionID: "t1",
		Packs: []sets.Pack{
			{Slug: "alpha-pack", Suffix: "A"},
			{Slug: "beta-pack", Suffix: "B"},
		},
	}
}

func entryByURL(t *testing.T, c *catalog.Catalog, url string) catalog.Entry {
	t.Helper()
	for _, entry := range c.Entries() {
		if entry.URL == url {
			return entry
		}
	}
	t.Fatalf("entry %s not in catalog", url)
	return catalog.Entry{}
}

func TestBuildMarksPackSpecificCards(t *testing.T) {
	set := twoPackSet()
	alphaPath := zone.PackPath("t1", "alpha-pack")
	betaPath := zone.PackPath("t1", "beta-pack")

	fetcher := &testsupport.FakeFetcher{
		Pages: map[string][]zone.Card{
			alphaPath: {
				{DetailURL: "https://z/cards/game/1/shared/", ImageURL: "img-shared"},
				{DetailURL: "https://z/cards/game/2/alpha-only/", ImageURL: "img-alpha"},
			},
			betaPath: {
				{DetailURL: "https://z/cards/game/1/shared/", ImageURL: "img-shared"},
			},
			"/sets/promo-a/": {
				{DetailURL: "https://z/cards/game/9/promo/", ImageURL: "img-promo"},
			},
		},
		Images: map[string]image.Image{
			"img-shared": testsupport.GridImage(0, 1, 2),
			"img-alpha":  testsupport.GridImage(10, 20, 30),
			"img-promo":  testsupport.GridImage(40, 50, 60),
		},
	}

	builder := catalog.NewBuilder(fetcher, nil, "/sets/promo-a/", logging.NewNop())
	built, err := builder.Build(context.Background(), set)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", built.Len())
	}

	shared := entryByURL(t, built, "https://z/cards/game/1/shared/")
	if shared.PackSpecific {
		t.Fatalf("shared card flagged pack-specific: %+v", shared)
	}
	if shared.PackURL != "" {
		t.Fatalf("shared card carries a pack url: %+v", shared)
	}

	alphaOnly := entryByURL(t, built, "https://z/cards/game/2/alpha-only/")
	if !alphaOnly.PackSpecific || alphaOnly.PackURL != alphaPath {
		t.Fatalf("pack-exclusive card not attributed: %+v", alphaOnly)
	}

	promo := entryByURL(t, built, "https://z/cards/game/9/promo/")
	if !promo.Promo || !promo.PackSpecific || promo.PackURL != "/sets/promo-a/" {
		t.Fatalf("promo entry malformed: %+v", promo)
	}
}

func TestBuildContinuesPastPackFetchFailure(t *testing.T) {
	set := twoPackSet()
	alphaPath := zone.PackPath("t1", "alpha-pack")
	betaPath := zone.PackPath("t1", "beta-pack")

	fetcher := &testsupport.FakeFetcher{
		Pages: map[string][]zone.Card{
			alphaPath: {
				{DetailURL: "https://z/cards/game/1/survivor/", ImageURL: "img-survivor"},
			},
			"/sets/promo-a/": {},
		},
		Images: map[string]image.Image{
			"img-survivor": testsupport.GridImage(5),
		},
		Errors: map[string]error{
			betaPath: errors.New("listing unavailable"),
		},
	}

	builder := catalog.NewBuilder(fetcher, nil, "/sets/promo-a/", logging.NewNop())
	built, err := builder.Build(context.Background(), set)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", built.Len())
	}
}

func TestBuildSkipsFailedThumbnails(t *testing.T) {
	set := sets.Set{Name: "Solo", ExpansionID: "s1"}
	fetcher := &testsupport.FakeFetcher{
		Pages: map[string][]zone.Card{
			zone.SetPath("s1"): {
				{DetailURL: "https://z/cards/game/1/good/", ImageURL: "img-good"},
				{DetailURL: "https://z/cards/game/2/bad/", ImageURL: "img-bad"},
			},
			"/sets/promo-a/": {},
		},
		Images: map[string]image.Image{
			"img-good": testsupport.GridImage(1),
		},
		Errors: map[string]error{
			"img-bad": errors.New("image unavailable"),
		},
	}

	builder := catalog.NewBuilder(fetcher, nil, "/sets/promo-a/", logging.NewNop())
	built, err := builder.Build(context.Background(), set)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Len() != 1 {
		t.Fatalf("expected only the decodable card, got %d entries", built.Len())
	}
	if built.Entries()[0].URL != "https://z/cards/game/1/good/" {
		t.Fatalf("wrong survivor: %+v", built.Entries()[0])
	}
}

func TestBuildSetWithoutPacksUsesWholeSetListing(t *testing.T) {
	set := sets.Set{Name: "Mythic", ExpansionID: "m1"}
	fetcher := &testsupport.FakeFetcher{
		Pages: map[string][]zone.Card{
			zone.SetPath("m1"): {
				{DetailURL: "https://z/cards/game/1/only/", ImageURL: "img-only"},
			},
			"/sets/promo-a/": {},
		},
		Images: map[string]image.Image{
			"img-only": testsupport.GridImage(7),
		},
	}

	builder := catalog.NewBuilder(fetcher, nil, "/sets/promo-a/", logging.NewNop())
	built, err := builder.Build(context.Background(), set)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", built.Len())
	}
	// The whole set acts as one pseudo-pack, so its cards appear in
	// exactly one listing.
	if !built.Entries()[0].PackSpecific {
		t.Fatalf("pseudo-pack entry should count as pack-specific: %+v", built.Entries()[0])
	}
}

func TestBuildUsesCachedFingerprints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.db")
	cache, err := hashcache.Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	cached := imghash.FromBits(0xABCD)
	if err := cache.Store(context.Background(), "img-cached", cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// No image is registered for img-cached, so a cache miss would fail
	// the fingerprint step and drop the entry.
	fetcher := &testsupport.FakeFetcher{
		Pages: map[string][]zone.Card{
			zone.SetPath("s1"): {
				{DetailURL: "https://z/cards/game/1/cached/", ImageURL: "img-cached"},
			},
			"/sets/promo-a/": {},
		},
	}

	builder := catalog.NewBuilder(fetcher, cache, "/sets/promo-a/", logging.NewNop())
	built, err := builder.Build(context.Background(), sets.Set{Name: "Solo", ExpansionID: "s1"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Len() != 1 {
		t.Fatalf("cached entry missing: %d entries", built.Len())
	}
	if built.Entries()[0].Fingerprint.Bits() != cached.Bits() {
		t.Fatalf("fingerprint not served from cache: %s", built.Entries()[0].Fingerprint)
	}
}

func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &testsupport.FakeFetcher{}
	builder := catalog.NewBuilder(fetcher, nil, "/sets/promo-a/", logging.NewNop())
	if _, err := builder.Build(ctx, twoPackSet()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
