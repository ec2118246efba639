package repository

import "context"

// HashResolver recovers the internal chat hash for an item. The hash has no
// reverse mapping from the public identifier or slug and must be re-derived
// per item by scraping the rendered page.
type HashResolver interface {
	// ResolveHash accepts a full item URL (used verbatim) or a bare slug and
	// returns the opaque hash the messaging subsystem requires.
	ResolveHash(ctx context.Context, urlOrSlug string) (string, error)
}
