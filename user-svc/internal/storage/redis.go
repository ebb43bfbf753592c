package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-lock retries when two writers race on the
// same document.
const maxTxRetries = 100

var ErrInvalidPath = errors.New("invalid document path")

// RedisDocumentStore keeps each document as a JSON string under its
// "collection/id" key. Field paths ("collection/id/field") address one
// top-level field of that document. Writes to a field and every Update run
// inside a WATCH transaction on the document key.
type RedisDocumentStore struct {
	Client *redis.Client
}

func NewRedisDocumentStore(client *redis.Client) *RedisDocumentStore {
	return &RedisDocumentStore{Client: client}
}

func splitPath(path string) (key, field string, err error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch len(parts) {
	case 2:
		key = parts[0] + "/" + parts[1]
	case 3:
		key, field = parts[0]+"/"+parts[1], parts[2]
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	for _, p := range parts {
		if p == "" {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return key, field, nil
}

func (s *RedisDocumentStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	key, field, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if field == "" {
		return raw, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return doc[field], nil
}

func (s *RedisDocumentStore) Set(ctx context.Context, path string, value any) error {
	key, field, err := splitPath(path)
	if err != nil {
		return err
	}
	if field == "" {
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return s.Client.Set(ctx, key, encoded, 0).Err()
	}
	return s.Update(ctx, path, func(json.RawMessage, bool) (any, error) {
		return value, nil
	})
}

func (s *RedisDocumentStore) Delete(ctx context.Context, path string) error {
	key, field, err := splitPath(path)
	if err != nil {
		return err
	}
	if field == "" {
		return s.Client.Del(ctx, key).Err()
	}
	return s.Update(ctx, path, func(json.RawMessage, bool) (any, error) {
		return nil, nil
	})
}

func (s *RedisDocumentStore) Update(ctx context.Context, path string, fn func(current json.RawMessage, found bool) (any, error)) error {
	key, field, err := splitPath(path)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		found := true
		switch {
		case errors.Is(err, redis.Nil):
			raw, found = nil, false
		case err != nil:
			return err
		}

		doc := map[string]json.RawMessage{}
		current := json.RawMessage(raw)
		if field != "" {
			if found {
				if err := json.Unmarshal(raw, &doc); err != nil {
					return fmt.Errorf("decode %s: %w", key, err)
				}
				if doc == nil {
					doc = map[string]json.RawMessage{}
				}
			}
			current = doc[field]
		}

		value, err := fn(current, found)
		if err != nil {
			return err
		}

		var encoded []byte
		switch {
		case value == nil && field == "":
			encoded = nil
		case value == nil:
			if !found {
				return nil
			}
			delete(doc, field)
			if encoded, err = json.Marshal(doc); err != nil {
				return err
			}
		case field == "":
			if encoded, err = json.Marshal(value); err != nil {
				return err
			}
		default:
			if doc[field], err = json.Marshal(value); err != nil {
				return err
			}
			if encoded, err = json.Marshal(doc); err != nil {
				return err
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if encoded == nil {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, encoded, 0)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.Client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}
