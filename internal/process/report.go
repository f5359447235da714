package process

// SkipKind classifies why a local image produced no record.
type SkipKind string

const (
	// SkipTransient covers network and image-decode failures.
	SkipTransient SkipKind = "transient"
	// SkipFormat covers unparseable filenames and detail URLs.
	SkipFormat SkipKind = "format"
	// SkipNoMatch covers queries whose best distance exceeded the
	// acceptance threshold.
	SkipNoMatch SkipKind = "no-match"
)

// Skip records one skipped local image and the reason.
type Skip struct {
	Item   string
	Kind   SkipKind
	Reason string
}

// Report summarizes one set-processing run.
type Report struct {
	SetName        string
	CatalogEntries int
	LocalImages    int
	Matched        int
	Skips          []Skip
}

func (r *Report) skip(item string, kind SkipKind, reason string) {
	r.Skips = append(r.Skips, Skip{Item: item, Kind: kind, Reason: reason})
}

// Skipped counts skips of the given kind.
func (r *Report) Skipped(kind SkipKind) int {
	count := 0
	for _, s := range r.Skips {
		if s.Kind == kind {
			count++
		}
	}
	return count
}
