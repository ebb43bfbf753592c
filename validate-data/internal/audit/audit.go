// Package audit checks the catalog collections and user favorites for
// dangling references before they are served.
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"foodtour/catalog"
)

type userID string

func (id *userID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = userID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = userID(n.String())
	return nil
}

type user struct {
	ID        userID   `json:"id"`
	Name      string   `json:"name"`
	Favorites []userID `json:"favorites"`
}

// LoadFavorites reads a users.json array and returns favorites keyed by the
// user's name, falling back to the id and then the array position. A missing
// file yields no favorites.
func LoadFavorites(path string) (map[string][]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []user
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	favorites := make(map[string][]string, len(users))
	for i, u := range users {
		key := u.Name
		if key == "" {
			key = string(u.ID)
		}
		if key == "" {
			key = "#" + strconv.Itoa(i)
		}
		for _, fav := range u.Favorites {
			favorites[key] = append(favorites[key], string(fav))
		}
	}
	return favorites, nil
}

// Run loads every collection from src, validates them against each other
// and writes a report to out. It returns the issues found.
func Run(ctx context.Context, src catalog.Source, favorites map[string][]string, out io.Writer) ([]catalog.Issue, error) {
	restaurants, err := src.Restaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	items, err := src.MenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	categories, err := src.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	issues := catalog.Validate(restaurants, items, categories, favorites)
	fmt.Fprintf(out, "checked %d restaurants, %d menu items, %d categories, %d users\n",
		len(restaurants), len(items), len(categories), len(favorites))
	if len(issues) == 0 {
		fmt.Fprintln(out, "no integrity issues found")
		return nil, nil
	}

	fmt.Fprintf(out, "found %d integrity issues:\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(out, "- %s\n", issue)
	}
	return issues, nil
}
