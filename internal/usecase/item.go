package usecase

import (
	"context"
	"strings"

	"wallapop-bridge/internal/domain/model"
	"wallapop-bridge/internal/domain/repository"
)

// ItemUsecase fetches full item details by public identifier.
type ItemUsecase struct {
	repo repository.ItemRepository
}

// NewItemUsecase creates a new ItemUsecase.
func NewItemUsecase(repo repository.ItemRepository) *ItemUsecase {
	return &ItemUsecase{repo: repo}
}

// GetItem returns the normalized details for one item.
func (u *ItemUsecase) GetItem(ctx context.Context, itemID string) (*model.ItemDetails, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, &model.ValidationError{Msg: "item id is required"}
	}
	return u.repo.FetchByID(ctx, itemID)
}
