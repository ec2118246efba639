package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"wallapop-bridge/internal/domain/model"
	"wallapop-bridge/internal/domain/repository"
)

// DirectoryUsecase serves the pass-through lookups: users and categories.
type DirectoryUsecase struct {
	repo repository.DirectoryRepository
}

// NewDirectoryUsecase creates a new DirectoryUsecase.
func NewDirectoryUsecase(repo repository.DirectoryRepository) *DirectoryUsecase {
	return &DirectoryUsecase{repo: repo}
}

// GetUser relays a user profile unchanged.
func (u *DirectoryUsecase) GetUser(ctx context.Context, userID string) (json.RawMessage, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &model.ValidationError{Msg: "user id is required"}
	}
	return u.repo.FetchUser(ctx, userID)
}

// GetCategories relays the category tree unchanged.
func (u *DirectoryUsecase) GetCategories(ctx context.Context) (json.RawMessage, error) {
	return u.repo.FetchCategories(ctx)
}
