package world

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

// Map is a fixed-size grid of tiles addressed by (x, y).
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]
}

// NewMap creates a map filled with floor tiles.
func NewMap(width, height int) *Map {
	return newMap(width, height, Floor())
}

// NewFilledMap creates a map filled with wall tiles, ready to be carved.
func NewFilledMap(width, height int) *Map {
	return newMap(width, height, Wall())
}

func newMap(width, height int, fill Tile) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// Bounds returns the map extent as a gruid range.
func (m *Map) Bounds() gruid.Range {
	return gruid.NewRange(0, 0, m.Width, m.Height)
}

// InBounds reports whether p lies inside the map.
func (m *Map) InBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TileAt returns the tile at p. Callers guarantee p is in bounds.
func (m *Map) TileAt(p gruid.Point) Tile {
	if !m.InBounds(p) {
		panic(fmt.Sprintf("world: TileAt(%v) outside %dx%d map", p, m.Width, m.Height))
	}
	return m.Tiles[p.Y][p.X]
}

// IsPassable reports whether terrain at p can be walked on.
// Out-of-bounds positions are never passable.
func (m *Map) IsPassable(p gruid.Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Tiles[p.Y][p.X].IsPassable()
}

// SetWall makes the tile at p a wall.
func (m *Map) SetWall(p gruid.Point) {
	explored := m.TileAt(p).Explored
	m.Tiles[p.Y][p.X] = Wall()
	m.Tiles[p.Y][p.X].Explored = explored
}

// SetFloor makes the tile at p floor.
func (m *Map) SetFloor(p gruid.Point) {
	explored := m.TileAt(p).Explored
	m.Tiles[p.Y][p.X] = Floor()
	m.Tiles[p.Y][p.X].Explored = explored
}

// MarkExplored flags the tile at p as explored.
func (m *Map) MarkExplored(p gruid.Point) {
	if m.InBounds(p) {
		m.Tiles[p.Y][p.X].Explored = true
	}
}

// Explore marks every cell of a visible set as explored.
func (m *Map) Explore(visible mapset.Set[gruid.Point]) {
	visible.Each(func(p gruid.Point) {
		m.MarkExplored(p)
	})
}

// ExploredCount returns how many tiles have been explored.
func (m *Map) ExploredCount() int {
	n := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x].Explored {
				n++
			}
		}
	}
	return n
}
