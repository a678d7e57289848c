// Package world provides the tile grid and dungeon generation.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked     bool // Impassable to movement
	BlocksSight bool // Opaque to field of view
	Explored    bool // Seen at least once; never reverts
}

// Floor returns an open, transparent tile.
func Floor() Tile {
	return Tile{}
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}
