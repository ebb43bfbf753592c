package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Source interface {
	Restaurants(ctx context.Context) ([]Restaurant, error)
	MenuItems(ctx context.Context) ([]MenuItem, error)
	Categories(ctx context.Context) ([]Category, error)
}

// Load reads the three collections concurrently and builds the index.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var (
		restaurants []Restaurant
		items       []MenuItem
		categories  []Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurants, err = src.Restaurants(gctx)
		if err != nil {
			return fmt.Errorf("load restaurants: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = src.MenuItems(gctx)
		if err != nil {
			return fmt.Errorf("load menu items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = src.Categories(gctx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := New(restaurants, items, categories)
	stats := c.Stats()
	log.Info().
		Int("restaurants", stats.Restaurants).
		Int("menu_items", stats.MenuItems).
		Int("categories", stats.Categories).
		Int("with_location", stats.WithLocation).
		Msg("catalog loaded")
	return c, nil
}

const (
	RestaurantsFile = "restaurants.json"
	MenusFile       = "menus.json"
	CategoriesFile  = "categories.json"
)

// JSONSource reads the collections from JSON array files in Dir. A missing
// file yields an empty collection so a partial data directory still boots.
type JSONSource struct {
	Dir string
}

func NewJSONSource(dir string) *JSONSource {
	return &JSONSource{Dir: dir}
}

func (s *JSONSource) Restaurants(ctx context.Context) ([]Restaurant, error) {
	data, err := s.read(RestaurantsFile)
	if err != nil || data == nil {
		return nil, err
	}
	out, err := DecodeRestaurants(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RestaurantsFile, err)
	}
	return out, nil
}

func (s *JSONSource) MenuItems(ctx context.Context) ([]MenuItem, error) {
	data, err := s.read(MenusFile)
	if err != nil || data == nil {
		return nil, err
	}
	out, err := DecodeMenuItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MenusFile, err)
	}
	return out, nil
}

func (s *JSONSource) Categories(ctx context.Context) ([]Category, error) {
	data, err := s.read(CategoriesFile)
	if err != nil || data == nil {
		return nil, err
	}
	out, err := DecodeCategories(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CategoriesFile, err)
	}
	return out, nil
}

func (s *JSONSource) read(name string) ([]byte, error) {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("catalog file not found, using empty collection")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

var _ Source = (*JSONSource)(nil)
