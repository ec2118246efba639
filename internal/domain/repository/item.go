package repository

import (
	"context"

	"wallapop-bridge/internal/domain/model"
)

// ItemRepository abstracts where items come from. The domain layer does not
// know whether the implementation talks to a JSON API, scrapes HTML, or reads
// fixtures; that keeps the upstream's unstable shapes out of the core.
type ItemRepository interface {
	// Search runs one search call and returns a normalized page of results.
	Search(ctx context.Context, query model.SearchQuery) (*model.SearchResultPage, error)

	// FetchByID fetches full details for one item by its public identifier.
	FetchByID(ctx context.Context, itemID string) (*model.ItemDetails, error)
}
