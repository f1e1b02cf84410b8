// Package store persists opaque values under string keys.
//
// The application keeps its whole state in a single slot (AppKey). Backends
// are picked by driver name; see Open.
package store

import (
	"fmt"

	"github.com/Makepad-fr/chores/internal/store/jsonstore"
	"github.com/Makepad-fr/chores/internal/store/sqlitestore"
)

// AppKey is the slot holding the serialized application state.
const AppKey = "app"

// Storage is a keyed slot store. Get reports ok=false for a missing key.
type Storage interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Drivers lists the accepted driver names.
var Drivers = []string{"json", "sqlite"}

// Open returns the backend for driver, rooted at path.
func Open(driver, path string) (Storage, error) {
	switch driver {
	case "json":
		return jsonstore.New(path), nil
	case "sqlite":
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
