// Package storage is the local persistence layer: a small key/value
// interface over named keys with SQLite, Badger and in-memory backends.
//
// Callers do read-modify-write on whole values. Nothing here coordinates
// writers in different processes; the last Set wins.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Backend names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverMemory = "memory"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Storage is a key/value store over named keys.
type Storage interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores all entries atomically.
	SetMany(ctx context.Context, entries map[string][]byte) error

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error

	Close() error
}

// Open returns the backend named by driver. path is the SQLite file or the
// Badger directory and is ignored for the memory backend.
func Open(ctx context.Context, driver, path string) (Storage, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, path)
	case DriverBadger:
		return OpenBadger(path)
	case DriverMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// GetJSON loads key and decodes it into a T. found is false when the key is
// absent; a decode failure is returned as an error with found set to true.
func GetJSON[T any](ctx context.Context, s Storage, key string) (v T, found bool, err error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, false, err
	}
	if raw == nil {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, true, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
