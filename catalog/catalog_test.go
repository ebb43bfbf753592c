package catalog

import (
	"testing"

	"foodtour/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	restaurants := []Restaurant{
		{ID: "r1", Name: "Phở Thìn", CategoryID: 2, Location: geo.NewPoint(21.02, 105.85)},
		{ID: "r2", Name: "Bánh Mì Phượng", CategoryID: 1},
		{ID: "", Name: "no id"},
		{ID: "r1", Name: "duplicate"},
	}
	items := []MenuItem{
		{ID: "m1", RestaurantID: "r1", DishName: "Phở bò"},
		{ID: "m2", RestaurantID: "r1", DishName: "Phở gà"},
		{ID: "m3", RestaurantID: "ghost", DishName: "Bún chả"},
	}
	categories := []Category{
		{ID: 2, Name: "Soup"},
		{ID: 1, Name: "Dry"},
	}
	return New(restaurants, items, categories)
}

func TestCatalog_Lookup(t *testing.T) {
	c := sampleCatalog()

	require.Len(t, c.Restaurants(), 2)

	r, ok := c.Restaurant("r1")
	assert.True(t, ok)
	assert.Equal(t, "Phở Thìn", r.Name, "first record wins on duplicate id")

	_, ok = c.Restaurant("missing")
	assert.False(t, ok)

	_, ok = c.Restaurant("")
	assert.False(t, ok)
}

func TestCatalog_RestaurantsByIDs(t *testing.T) {
	c := sampleCatalog()

	got := c.RestaurantsByIDs([]string{"r2", "nope", "r1"})
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)

	assert.Empty(t, c.RestaurantsByIDs(nil))
}

func TestCatalog_Menus(t *testing.T) {
	c := sampleCatalog()

	assert.Len(t, c.MenuFor("r1"), 2)
	assert.Empty(t, c.MenuFor("r2"))
	assert.Len(t, c.MenuFor("ghost"), 1)
	assert.Len(t, c.MenuItems(), 3)

	item, ok := c.MenuItem("m2")
	assert.True(t, ok)
	assert.Equal(t, "Phở gà", item.DishName)
}

func TestCatalog_Categories(t *testing.T) {
	c := sampleCatalog()

	cats := c.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, 1, cats[0].ID)

	cat, ok := c.Category(2)
	assert.True(t, ok)
	assert.Equal(t, "Soup", cat.Name)

	_, ok = c.Category(9)
	assert.False(t, ok)
}

func TestCatalog_Stats(t *testing.T) {
	stats := sampleCatalog().Stats()
	assert.Equal(t, Stats{Restaurants: 2, MenuItems: 3, Categories: 2, WithLocation: 1, OrphanedItems: 1}, stats)
}
