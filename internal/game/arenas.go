package game

import "github.com/vovakirdan/term-snake/internal/registry"

// DefaultArena is the arena used when none is configured.
const DefaultArena = "classic"

func init() {
	registry.Register(registry.Arena{ID: "classic", Title: "Classic 17x15", Width: 17, Height: 15})
	registry.Register(registry.Arena{ID: "compact", Title: "Compact 11x9", Width: 11, Height: 9})
	registry.Register(registry.Arena{ID: "wide", Title: "Wide 32x16", Width: 32, Height: 16})
}

// ArenaGrid returns the board size of an arena.
func ArenaGrid(a registry.Arena) Grid {
	return Grid{Width: a.Width, Height: a.Height}
}
