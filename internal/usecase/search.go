package usecase

import (
	"context"
	"strings"

	"wallapop-bridge/internal/domain/model"
	"wallapop-bridge/internal/domain/repository"
)

// SearchUsecase validates search input and delegates to the repository.
type SearchUsecase struct {
	repo repository.ItemRepository
}

// NewSearchUsecase creates a new SearchUsecase.
func NewSearchUsecase(repo repository.ItemRepository) *SearchUsecase {
	return &SearchUsecase{repo: repo}
}

// Search runs one search call against the upstream. With a pagination
// cursor the filters are ignored upstream, so keywords stop being required.
func (u *SearchUsecase) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResultPage, error) {
	if query.NextPage == "" && strings.TrimSpace(query.Keywords) == "" {
		return nil, &model.ValidationError{Msg: "keywords are required unless a next_page cursor is given"}
	}
	if query.MinPrice != nil && *query.MinPrice < 0 {
		return nil, &model.ValidationError{Msg: "min_price must be non-negative"}
	}
	if query.MaxPrice != nil && *query.MaxPrice < 0 {
		return nil, &model.ValidationError{Msg: "max_price must be non-negative"}
	}
	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		return nil, &model.ValidationError{Msg: "min_price cannot exceed max_price"}
	}
	if query.Order != "" && !validOrder(query.Order) {
		return nil, &model.ValidationError{Msg: "order must be one of newest, price_low_to_high, price_high_to_low, closest"}
	}
	return u.repo.Search(ctx, query)
}

func validOrder(order string) bool {
	switch order {
	case model.OrderNewest, model.OrderPriceAsc, model.OrderPriceDesc, model.OrderClosest:
		return true
	}
	return false
}
