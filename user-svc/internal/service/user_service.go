package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"foodtour/catalog"
	"foodtour/user-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMissingRestaurantID = errors.New("restaurant_id is required")
)

func userPath(userID string) string {
	return "users/" + userID
}

func favoritesPath(userID string) string {
	return userPath(userID) + "/favorites"
}

type UserService struct {
	store       DocumentStore
	restaurants RestaurantLookup
}

func NewUserService(store DocumentStore, restaurants RestaurantLookup) *UserService {
	return &UserService{store: store, restaurants: restaurants}
}

func (s *UserService) load(ctx context.Context, userID string, dest any) error {
	raw, err := s.store.Get(ctx, userPath(userID))
	if err != nil {
		return fmt.Errorf("load user %s: %w", userID, err)
	}
	if raw == nil {
		return ErrUserNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode user %s: %w", userID, err)
	}
	return nil
}

func (s *UserService) document(ctx context.Context, userID string) (map[string]any, error) {
	var doc map[string]any
	if err := s.load(ctx, userID, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *UserService) profile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	if err := s.load(ctx, userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (map[string]any, error) {
	return s.document(ctx, userID)
}

// UpdateProfile writes the non-empty fields of req, creating the document
// when the user has none yet.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (map[string]any, error) {
	var doc map[string]any
	err := s.store.Update(ctx, userPath(userID), func(current json.RawMessage, _ bool) (any, error) {
		doc = map[string]any{}
		if current != nil {
			if err := json.Unmarshal(current, &doc); err != nil {
				return nil, fmt.Errorf("decode user %s: %w", userID, err)
			}
			if doc == nil {
				doc = map[string]any{}
			}
		}
		if req.Name != "" {
			doc["name"] = req.Name
		}
		if req.AvatarURL != "" {
			doc["avatar_url"] = req.AvatarURL
		}
		return doc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("save user %s: %w", userID, err)
	}
	return doc, nil
}

func (s *UserService) Favorites(ctx context.Context, userID string) ([]string, error) {
	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.Favorites == nil {
		return []string{}, nil
	}
	return p.Favorites, nil
}

// ToggleFavorite adds restaurantID to the user's favorites or removes it if
// already present. An emptied list removes the field from the document. The
// read and the write happen in one store transaction.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, restaurantID string) (*domain.ToggleResult, error) {
	if restaurantID == "" {
		return nil, ErrMissingRestaurantID
	}

	var result domain.ToggleResult
	err := s.store.Update(ctx, favoritesPath(userID), func(current json.RawMessage, found bool) (any, error) {
		if !found {
			return nil, ErrUserNotFound
		}
		var stored domain.FavoriteIDs
		if current != nil {
			if err := json.Unmarshal(current, &stored); err != nil {
				return nil, fmt.Errorf("decode favorites of %s: %w", userID, err)
			}
		}

		favorites := []string(stored)
		if slices.Contains(favorites, restaurantID) {
			favorites = slices.DeleteFunc(favorites, func(id string) bool { return id == restaurantID })
			result.Action = domain.ActionRemoved
			result.Message = "Restaurant removed from favorites"
		} else {
			favorites = append(favorites, restaurantID)
			result.Action = domain.ActionAdded
			result.Message = "Restaurant added to favorites"
		}

		if len(favorites) == 0 {
			result.Favorites = []string{}
			return nil, nil
		}
		result.Favorites = favorites
		return favorites, nil
	})
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("update favorites of %s: %w", userID, err)
	}

	log.Info().Str("user_id", userID).Str("restaurant_id", restaurantID).Str("action", result.Action).Int("count", len(result.Favorites)).Msg("favorites updated")
	return &result, nil
}

// FavoriteRestaurants resolves the user's favorites against the catalog.
// Ids with no catalog record are skipped.
func (s *UserService) FavoriteRestaurants(ctx context.Context, userID string) ([]catalog.Restaurant, error) {
	ids, err := s.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.restaurants.RestaurantsByIDs(ids), nil
}
