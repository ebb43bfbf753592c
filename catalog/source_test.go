package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_JSONSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RestaurantsFile, `[{"id": 1, "name": "Bún Chả Hương Liên", "lat": 21.01, "lon": 105.85}]`)
	writeFile(t, dir, MenusFile, `[{"id": 10, "restaurant_id": 1, "dish_name": "Bún chả"}]`)

	c, err := Load(context.Background(), NewJSONSource(dir))
	require.NoError(t, err)

	assert.Len(t, c.Restaurants(), 1)
	assert.Len(t, c.MenuFor("1"), 1)
	assert.Empty(t, c.Categories(), "missing categories file yields an empty collection")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RestaurantsFile, `[{"id": 1,`)

	_, err := Load(context.Background(), NewJSONSource(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load restaurants")
}

type failingSource struct {
	*JSONSource
}

func (failingSource) MenuItems(context.Context) ([]MenuItem, error) {
	return nil, errors.New("boom")
}

func TestLoad_SourceError(t *testing.T) {
	_, err := Load(context.Background(), failingSource{NewJSONSource(t.TempDir())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load menu items: boom")
}
