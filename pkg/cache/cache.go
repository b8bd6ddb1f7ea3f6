// Package cache provides a generic, thread-safe cache used by the component
// builder to share expensive component instances within a build.
//
// Statistics are always collected; Prometheus metrics are optional and
// enabled via functional options.
package cache

import (
	"strings"

	"github.com/kpe/rasa-nlu/errors"
)

// Cache is a generic cache keyed by string, parameterized by value type V.
type Cache[V any] interface {
	// Get retrieves a value by key. Returns the value and true if found.
	Get(key string) (V, bool)

	// Set stores a value with the given key. Returns true if a new entry
	// was created, false if an existing entry was updated.
	Set(key string, value V) (bool, error)

	// Delete removes an entry by key. Returns true if the key existed.
	Delete(key string) (bool, error)

	// Clear removes all entries.
	Clear() error

	// Size returns the current number of entries.
	Size() int

	// Keys returns all keys currently in the cache.
	Keys() []string

	// Stats returns the cache statistics.
	Stats() *Statistics
}

// validateKey rejects keys that cannot safely participate in lookups.
func validateKey(key string) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "validateKey", "empty key")
	}
	if strings.ContainsRune(key, '\x00') {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "validateKey", "invalid key characters")
	}
	return nil
}
