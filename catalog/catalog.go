// Package catalog is the read-only restaurant and menu reference data,
// loaded once at startup and shared by every request.
package catalog

import "sort"

// Catalog is immutable after New returns; concurrent readers need no locks.
type Catalog struct {
	restaurants []Restaurant
	byID        map[string]int
	items       []MenuItem
	itemByID    map[string]int
	menus       map[string][]MenuItem
	categories  []Category
	categoryIdx map[int]int
}

// New indexes the given collections. Records must already be normalized
// (see the Decode functions); restaurants with an empty or duplicate id are dropped.
func New(restaurants []Restaurant, items []MenuItem, categories []Category) *Catalog {
	c := &Catalog{
		restaurants: make([]Restaurant, 0, len(restaurants)),
		byID:        make(map[string]int, len(restaurants)),
		items:       make([]MenuItem, 0, len(items)),
		itemByID:    make(map[string]int, len(items)),
		menus:       make(map[string][]MenuItem),
		categories:  make([]Category, 0, len(categories)),
		categoryIdx: make(map[int]int, len(categories)),
	}

	for _, r := range restaurants {
		if r.ID == "" {
			continue
		}
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = len(c.restaurants)
		c.restaurants = append(c.restaurants, r)
	}

	for _, it := range items {
		if it.ID != "" {
			if _, dup := c.itemByID[it.ID]; !dup {
				c.itemByID[it.ID] = len(c.items)
			}
		}
		c.items = append(c.items, it)
		c.menus[it.RestaurantID] = append(c.menus[it.RestaurantID], it)
	}

	for _, cat := range categories {
		if _, dup := c.categoryIdx[cat.ID]; dup {
			continue
		}
		c.categoryIdx[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	sort.SliceStable(c.categories, func(i, j int) bool { return c.categories[i].ID < c.categories[j].ID })
	for i, cat := range c.categories {
		c.categoryIdx[cat.ID] = i
	}

	return c
}

// Restaurants returns the catalog in load order. The slice is shared and
// must not be modified.
func (c *Catalog) Restaurants() []Restaurant {
	return c.restaurants
}

func (c *Catalog) Restaurant(id string) (Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Restaurant{}, false
	}
	return c.restaurants[i], true
}

// RestaurantsByIDs resolves ids in order, skipping unknown ones.
func (c *Catalog) RestaurantsByIDs(ids []string) []Restaurant {
	out := make([]Restaurant, 0, len(ids))
	for _, id := range ids {
		if r, ok := c.Restaurant(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// MenuFor returns the items whose restaurant_id is id, even when that
// restaurant is not itself in the catalog.
func (c *Catalog) MenuFor(id string) []MenuItem {
	return c.menus[id]
}

// Menus exposes the by-restaurant grouping the search engine consumes.
func (c *Catalog) Menus() map[string][]MenuItem {
	return c.menus
}

func (c *Catalog) MenuItems() []MenuItem {
	return c.items
}

func (c *Catalog) MenuItem(id string) (MenuItem, bool) {
	i, ok := c.itemByID[id]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Categories() []Category {
	return c.categories
}

func (c *Catalog) Category(id int) (Category, bool) {
	i, ok := c.categoryIdx[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Restaurants: len(c.restaurants),
		MenuItems:   len(c.items),
		Categories:  len(c.categories),
	}
	for _, r := range c.restaurants {
		if r.Location != nil {
			s.WithLocation++
		}
	}
	for _, it := range c.items {
		if _, ok := c.byID[it.RestaurantID]; !ok {
			s.OrphanedItems++
		}
	}
	return s
}
