// Package kv provides the flat, namespaced key→JSON-blob store that every
// other Haven component persists through. Keys are plain strings; values are
// JSON-serialized documents. A missing key is not an error: Get returns
// (nil, nil) and the JSON helpers leave the destination at its zero value,
// so consumers see empty collections rather than failures.
package kv

import (
	"context"
	"encoding/json"
)

// Store is the persistence capability injected into each component
// constructor. Implementations must be durable across process restarts
// (SQLiteStore) or explicitly ephemeral for tests (MemoryStore).
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns a snapshot of all stored key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// GetJSON decodes the value stored under key into v. It reports whether the
// key was present; an absent key leaves v untouched and returns (false, nil).
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
