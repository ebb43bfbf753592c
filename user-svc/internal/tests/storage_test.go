package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"foodtour/user-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.RedisDocumentStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewRedisDocumentStore(client), mr
}

func TestRedisDocumentStore_Document(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	raw, err := store.Get(ctx, "users/u1")
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, store.Set(ctx, "users/u1", map[string]any{"name": "Lan"}))
	stored, err := mr.Get("users/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lan"}`, stored)

	raw, err = store.Get(ctx, "users/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lan"}`, string(raw))

	require.NoError(t, store.Delete(ctx, "users/u1"))
	assert.False(t, mr.Exists("users/u1"))
}

func TestRedisDocumentStore_Field(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	mr.Set("users/u1", `{"name":"Lan","email":"lan@example.com"}`)

	require.NoError(t, store.Set(ctx, "users/u1/favorites", []string{"1", "2"}))
	stored, err := mr.Get("users/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lan","email":"lan@example.com","favorites":["1","2"]}`, stored)

	raw, err := store.Get(ctx, "users/u1/favorites")
	require.NoError(t, err)
	var favorites []string
	require.NoError(t, json.Unmarshal(raw, &favorites))
	assert.Equal(t, []string{"1", "2"}, favorites)

	raw, err = store.Get(ctx, "users/u1/phone")
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, store.Delete(ctx, "users/u1/favorites"))
	stored, err = mr.Get("users/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lan","email":"lan@example.com"}`, stored)
}

func TestRedisDocumentStore_FieldOnMissingDocument(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "users/ghost/favorites"))
	assert.False(t, mr.Exists("users/ghost"))

	require.NoError(t, store.Set(ctx, "users/new/name", "Minh"))
	stored, err := mr.Get("users/new")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Minh"}`, stored)
}

func TestRedisDocumentStore_Update(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	t.Run("field of missing document", func(t *testing.T) {
		err := store.Update(ctx, "users/ghost/favorites", func(current json.RawMessage, found bool) (any, error) {
			assert.Nil(t, current)
			assert.False(t, found)
			return nil, nil
		})
		require.NoError(t, err)
		assert.False(t, mr.Exists("users/ghost"))
	})

	t.Run("rewrites field from current value", func(t *testing.T) {
		mr.Set("users/u1", `{"name":"Lan","favorites":["1"]}`)
		err := store.Update(ctx, "users/u1/favorites", func(current json.RawMessage, found bool) (any, error) {
			assert.True(t, found)
			var favorites []string
			require.NoError(t, json.Unmarshal(current, &favorites))
			return append(favorites, "2"), nil
		})
		require.NoError(t, err)
		stored, _ := mr.Get("users/u1")
		assert.JSONEq(t, `{"name":"Lan","favorites":["1","2"]}`, stored)
	})

	t.Run("error aborts the write", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.Update(ctx, "users/u1/favorites", func(json.RawMessage, bool) (any, error) {
			return []string{}, boom
		})
		assert.ErrorIs(t, err, boom)
		stored, _ := mr.Get("users/u1")
		assert.JSONEq(t, `{"name":"Lan","favorites":["1","2"]}`, stored)
	})

	t.Run("whole document", func(t *testing.T) {
		err := store.Update(ctx, "users/u1", func(current json.RawMessage, found bool) (any, error) {
			assert.True(t, found)
			assert.JSONEq(t, `{"name":"Lan","favorites":["1","2"]}`, string(current))
			return map[string]any{"name": "Lan Anh"}, nil
		})
		require.NoError(t, err)
		stored, _ := mr.Get("users/u1")
		assert.JSONEq(t, `{"name":"Lan Anh"}`, stored)

		require.NoError(t, store.Update(ctx, "users/u1", func(json.RawMessage, bool) (any, error) {
			return nil, nil
		}))
		assert.False(t, mr.Exists("users/u1"))
	})
}

func TestRedisDocumentStore_InvalidPath(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	tests := []string{"users", "", "users//favorites", "a/b/c/d"}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := store.Get(ctx, path)
			assert.ErrorIs(t, err, storage.ErrInvalidPath)
			assert.ErrorIs(t, store.Set(ctx, path, 1), storage.ErrInvalidPath)
			assert.ErrorIs(t, store.Delete(ctx, path), storage.ErrInvalidPath)
			assert.ErrorIs(t, store.Update(ctx, path, func(json.RawMessage, bool) (any, error) {
				return nil, nil
			}), storage.ErrInvalidPath)
		})
	}
}
