package repository

import (
	"context"
	"encoding/json"
)

// DirectoryRepository covers the lookups that are relayed to the upstream
// with no shape changes: user profiles and the category tree.
type DirectoryRepository interface {
	// FetchUser returns the raw upstream payload for a user profile.
	FetchUser(ctx context.Context, userID string) (json.RawMessage, error)

	// FetchCategories returns the raw upstream category tree.
	FetchCategories(ctx context.Context) (json.RawMessage, error)
}
