package catalog

import (
	"context"
	"image"
	"log/slog"

	"carddex/internal/hashcache"
	"carddex/internal/imghash"
	"carddex/internal/logging"
	"carddex/internal/sets"
	"carddex/internal/zone"
)

// Fetcher is the slice of the catalog site client the builder needs.
type Fetcher interface {
	FetchCards(ctx context.Context, path string) ([]zone.Card, error)
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)
}

// Builder assembles set catalogs from listing pages and thumbnails.
type Builder struct {
	fetcher   Fetcher
	cache     *hashcache.Cache
	promoPath string
	logger    *slog.Logger
}

// NewBuilder creates a catalog builder. The cache may be nil.
func NewBuilder(fetcher Fetcher, cache *hashcache.Cache, promoPath string, logger *slog.Logger) *Builder {
	return &Builder{
		fetcher:   fetcher,
		cache:     cache,
		promoPath: promoPath,
		logger:    logging.NewComponentLogger(logger, "catalog"),
	}
}

// packPaths resolves a set's listing paths. A set with no sub-pack
// configuration is a single pseudo-pack covering the whole set.
func packPaths(set sets.Set) []string {
	if len(set.Packs) == 0 {
		return []string{zone.SetPath(set.ExpansionID)}
	}
	paths := make([]string, 0, len(set.Packs))
	for _, pack := range set.Packs {
		paths = append(paths, zone.PackPath(set.ExpansionID, pack.Slug))
	}
	return paths
}

// Build scans all of the set's pack listings, fingerprints every distinct
// card once, and appends the promo pool. Individual pack or image failures
// are logged and skipped; only context cancellation aborts the build.
func (b *Builder) Build(ctx context.Context, set sets.Set) (*Catalog, error) {
	appearances := make(map[string][]string)
	thumbnails := make(map[string]string)
	var order []string

	for _, path := range packPaths(set) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.logger.Debug("fetching pack listing", logging.String("pack", path))
		listing, err := b.fetcher.FetchCards(ctx, path)
		if err != nil {
			b.logger.Warn("pack listing fetch failed",
				logging.String("pack", path),
				logging.Error(err))
			continue
		}
		for _, card := range listing {
			if _, seen := appearances[card.DetailURL]; !seen {
				thumbnails[card.DetailURL] = card.ImageURL
				order = append(order, card.DetailURL)
			}
			appearances[card.DetailURL] = append(appearances[card.DetailURL], path)
		}
	}

	catalog := &Catalog{}
	for _, cardURL := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fp, err := b.fingerprint(ctx, thumbnails[cardURL])
		if err != nil {
			b.logger.Warn("card image fingerprint failed",
				logging.String("card", cardURL),
				logging.Error(err))
			continue
		}
		packs := appearances[cardURL]
		entry := Entry{
			URL:          cardURL,
			ImageURL:     thumbnails[cardURL],
			Fingerprint:  fp,
			PackSpecific: len(packs) == 1,
		}
		if entry.PackSpecific {
			entry.PackURL = packs[0]
		}
		catalog.Add(entry)
	}

	if err := b.addPromos(ctx, catalog); err != nil {
		return nil, err
	}

	b.logger.Info("catalog built",
		logging.String("set", set.Name),
		logging.Int("entries", catalog.Len()))
	return catalog, nil
}

// addPromos fetches the fixed promo listing and appends its cards as the
// promo match class.
func (b *Builder) addPromos(ctx context.Context, catalog *Catalog) error {
	listing, err := b.fetcher.FetchCards(ctx, b.promoPath)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.logger.Warn("promo listing fetch failed", logging.Error(err))
		return nil
	}

	for _, card := range listing {
		if err := ctx.Err(); err != nil {
			return err
		}
		fp, err := b.fingerprint(ctx, card.ImageURL)
		if err != nil {
			b.logger.Warn("promo image fingerprint failed",
				logging.String("card", card.DetailURL),
				logging.Error(err))
			continue
		}
		catalog.Add(Entry{
			URL:          card.DetailURL,
			ImageURL:     card.ImageURL,
			Fingerprint:  fp,
			Promo:        true,
			PackURL:      b.promoPath,
			PackSpecific: true,
		})
	}
	return nil
}

func (b *Builder) fingerprint(ctx context.Context, imageURL string) (imghash.Fingerprint, error) {
	if fp, ok := b.cache.Lookup(ctx, imageURL); ok {
		return fp, nil
	}

	img, err := b.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return imghash.Fingerprint{}, err
	}
	fp, err := imghash.FromImage(img)
	if err != nil {
		return imghash.Fingerprint{}, err
	}

	if err := b.cache.Store(ctx, imageURL, fp); err != nil {
		b.logger.Debug("fingerprint cache store failed",
			logging.String("image_url", imageURL),
			logging.Error(err))
	}
	return fp, nil
}
