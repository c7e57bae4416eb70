// Package storage persists serialized form documents under a key. Save
// overwrites the key and Load reads it back; there is no history.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultKey is the key the builder saves under unless configured otherwise.
const DefaultKey = "formBuilder"

var (
	// ErrNotFound is returned by Get when nothing was saved under the key.
	ErrNotFound = errors.New("storage: key not found")
	// ErrInvalidKey is returned for empty keys or keys that are not a single
	// path segment.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Store is a key-value byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config selects and configures a driver.
type Config struct {
	Driver string `yaml:"driver"`
	// Path is the directory for the file driver and the database file for
	// the sqlite driver.
	Path string `yaml:"path"`
}

// Open builds the store described by cfg. An empty driver selects memory.
func Open(cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		return NewDirStore(cfg.Path)
	case DriverSQLite:
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// Close releases resources held by s when it holds any.
func Close(s Store) error {
	if closer, ok := s.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
