package process

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"carddex/internal/cards"
	"carddex/internal/catalog"
	"carddex/internal/imghash"
	"carddex/internal/logging"
	"carddex/internal/sets"
)

// AssetStore lists and fingerprints a set's local card images.
type AssetStore interface {
	List(setName string) ([]string, error)
	Fingerprint(setName, filename string) (imghash.Fingerprint, error)
}

// Options configures a Processor.
type Options struct {
	Builder     *catalog.Builder
	Assets      AssetStore
	MaxDistance int
	StripTokens []string
	Logger      *slog.Logger
}

// Processor runs set-processing: one full catalog build and local matching
// pass per set, sequentially.
type Processor struct {
	builder     *catalog.Builder
	assets      AssetStore
	maxDistance int
	stripTokens []string
	logger      *slog.Logger
}

// Result is the outcome of one set-processing run: the sorted per-set
// collections plus the run report.
type Result struct {
	Regular *cards.Collection
	Promo   *cards.Collection
	Report  Report
}

// New creates a processor.
func New(opts Options) *Processor {
	return &Processor{
		builder:     opts.Builder,
		assets:      opts.Assets,
		maxDistance: opts.MaxDistance,
		stripTokens: opts.StripTokens,
		logger:      logging.NewComponentLogger(opts.Logger, "process"),
	}
}

// ProcessSet processes one set end to end. A missing expansion identifier
// or asset folder aborts the set with ErrConfiguration; every other failure
// is recorded on the report and processing continues.
func (p *Processor) ProcessSet(ctx context.Context, set sets.Set) (*Result, error) {
	logger := p.logger.With(
		logging.String("set", set.Name),
		logging.String("run_id", uuid.NewString()),
	)

	if strings.TrimSpace(set.ExpansionID) == "" {
		return nil, Wrap(ErrConfiguration, "resolve set", fmt.Sprintf("no expansion id for %q", set.Name), nil)
	}

	filenames, err := p.assets.List(set.Name)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "list assets", fmt.Sprintf("asset folder for %q unavailable", set.Name), err)
	}

	logger.Info("processing set", logging.Int("local_images", len(filenames)))

	built, err := p.builder.Build(ctx, set)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Regular: cards.NewCollection(),
		Promo:   cards.NewCollection(),
		Report: Report{
			SetName:        set.Name,
			CatalogEntries: built.Len(),
			LocalImages:    len(filenames),
		},
	}

	for _, filename := range filenames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.processImage(logger, built, set, filename, result)
	}

	result.Regular.Sort(p.stripTokens)
	result.Promo.Sort(p.stripTokens)

	logger.Info("set processed",
		logging.Int("matched", result.Report.Matched),
		logging.Int("unmatched", result.Report.Skipped(SkipNoMatch)),
		logging.Int("skipped", len(result.Report.Skips)-result.Report.Skipped(SkipNoMatch)))
	return result, nil
}

func (p *Processor) processImage(logger *slog.Logger, built *catalog.Catalog, set sets.Set, filename string, result *Result) {
	key, ok := cards.Key(filename)
	if !ok {
		logger.Warn("unrecognized filename format", logging.String("file", filename))
		result.Report.skip(filename, SkipFormat, "fewer than four filename segments")
		return
	}

	fp, err := p.assets.Fingerprint(set.Name, filename)
	if err != nil {
		logger.Warn("local image fingerprint failed",
			logging.String("file", filename),
			logging.Error(err))
		result.Report.skip(filename, SkipTransient, err.Error())
		return
	}

	promo := cards.IsPromo(filename)
	match, ok := built.Match(fp, promo, p.maxDistance)
	if !ok {
		logger.Info("no close match",
			logging.String("file", filename),
			logging.Int("best_distance", match.Distance))
		result.Report.skip(filename, SkipNoMatch, fmt.Sprintf("best distance %d exceeds %d", match.Distance, p.maxDistance))
		return
	}

	record, err := cards.Derive(filename, cards.MatchContext{
		DetailURL:    match.Entry.URL,
		Promo:        match.Entry.Promo,
		PackSpecific: match.Entry.PackSpecific,
		PackURL:      match.Entry.PackURL,
	}, set)
	if err != nil {
		logger.Warn("record derivation failed",
			logging.String("file", filename),
			logging.Error(err))
		result.Report.skip(filename, SkipFormat, err.Error())
		return
	}

	logger.Debug("matched",
		logging.String("file", filename),
		logging.String("card", match.Entry.URL),
		logging.Int("distance", match.Distance))

	if promo {
		result.Promo.Put(key, record)
	} else {
		result.Regular.Put(key, record)
	}
	result.Report.Matched++
}
