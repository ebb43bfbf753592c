package service

import (
	"context"
	"encoding/json"

	"foodtour/catalog"
	"foodtour/user-svc/internal/domain"
)

type UserServiceInterface interface {
	Profile(ctx context.Context, userID string) (map[string]any, error)
	UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (map[string]any, error)
	Favorites(ctx context.Context, userID string) ([]string, error)
	ToggleFavorite(ctx context.Context, userID, restaurantID string) (*domain.ToggleResult, error)
	FavoriteRestaurants(ctx context.Context, userID string) ([]catalog.Restaurant, error)
}

// DocumentStore is a path-addressed JSON store. A path names either a
// document ("users/u1") or a top-level field inside it ("users/u1/favorites").
type DocumentStore interface {
	// Get returns nil without an error when nothing is stored at path.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Set(ctx context.Context, path string, value any) error
	Delete(ctx context.Context, path string) error
	// Update reads the value at path and writes what fn returns, atomically
	// with respect to other writers of the same document. fn receives nil
	// when nothing is stored at path, and found reports whether the
	// document holding path exists. Returning a nil value removes the path.
	// fn may run more than once when a concurrent write forces a retry.
	Update(ctx context.Context, path string, fn func(current json.RawMessage, found bool) (any, error)) error
}

// RestaurantLookup is satisfied by *catalog.Catalog.
type RestaurantLookup interface {
	RestaurantsByIDs(ids []string) []catalog.Restaurant
}

var _ UserServiceInterface = (*UserService)(nil)
