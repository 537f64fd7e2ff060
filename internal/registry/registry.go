// Package registry provides a global registry of arenas (board presets).
// Arenas register themselves in init() functions, allowing the CLI and menus
// to discover them without hardcoded lists.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownArena is returned by Lookup for an unregistered ID.
var ErrUnknownArena = errors.New("registry: unknown arena")

// Arena describes a named board size.
type Arena struct {
	ID     string // Used for CLI arguments and config files, e.g. "classic"
	Title  string // Human-readable name for menus
	Width  int    // Board width in cells
	Height int    // Board height in cells
}

var (
	arenas = make(map[string]Arena)
	mu     sync.RWMutex
)

// Register adds an arena to the registry.
// Typically called from an init() function.
// Panics if an arena with the same ID is already registered or the size is not positive.
func Register(a Arena) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := arenas[a.ID]; exists {
		panic(fmt.Sprintf("registry: arena %q already registered", a.ID))
	}
	if a.Width <= 0 || a.Height <= 0 {
		panic(fmt.Sprintf("registry: arena %q has invalid size %dx%d", a.ID, a.Width, a.Height))
	}

	arenas[a.ID] = a
}

// List returns all registered arenas, sorted by ID.
func List() []Arena {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Arena, 0, len(arenas))
	for _, a := range arenas {
		result = append(result, a)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the arena registered under id.
func Lookup(id string) (Arena, error) {
	mu.RLock()
	defer mu.RUnlock()

	a, ok := arenas[id]
	if !ok {
		return Arena{}, fmt.Errorf("%w %q", ErrUnknownArena, id)
	}
	return a, nil
}

// Exists checks if an arena with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := arenas[id]
	return ok
}
