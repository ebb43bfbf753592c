package domain

import (
	"encoding/json"
	"strings"
)

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// ID is a restaurant id that may arrive as a JSON string or number. It
// always holds the trimmed string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// FavoriteIDs decodes restaurant ids stored either as strings or as numbers
// and re-encodes them as strings.
type FavoriteIDs []string

func (f *FavoriteIDs) UnmarshalJSON(b []byte) error {
	var raw []ID
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ids := make(FavoriteIDs, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, string(id))
	}
	*f = ids
	return nil
}

// Profile is the part of the user document this service reads. The stored
// document may carry more fields, which are preserved on write.
type Profile struct {
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email,omitempty"`
	AvatarURL string      `json:"avatar_url,omitempty"`
	Favorites FavoriteIDs `json:"favorites,omitempty"`
}

type ToggleFavoriteRequest struct {
	RestaurantID ID `json:"restaurant_id"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,max=2048"`
}

type ToggleResult struct {
	Message   string   `json:"message"`
	Action    string   `json:"action"`
	Favorites []string `json:"favorites"`
}
