// Package fov computes which map cells are visible from a point.
package fov

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"

	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// Oracle turns a map, an origin and a radius into the set of visible cells.
type Oracle interface {
	Compute(m *world.Map, origin gruid.Point, radius int) mapset.Set[gruid.Point]
}

// ShadowCaster is an Oracle using gruid's symmetric shadow casting.
// It reuses its working buffers between calls on maps of the same size.
type ShadowCaster struct {
	fov    *rl.FOV
	bounds gruid.Range
}

// NewShadowCaster returns a ready-to-use shadow-casting oracle.
func NewShadowCaster() *ShadowCaster {
	return &ShadowCaster{}
}

// Compute returns the cells visible from origin within radius. The origin is always visible.
func (s *ShadowCaster) Compute(m *world.Map, origin gruid.Point, radius int) mapset.Set[gruid.Point] {
	if s.fov == nil || s.bounds != m.Bounds() {
		s.bounds = m.Bounds()
		s.fov = rl.NewFOV(s.bounds)
	}

	transparent := func(p gruid.Point) bool {
		return m.InBounds(p) && !m.TileAt(p).BlocksSight
	}

	visible := mapset.New[gruid.Point]()
	visible.Put(origin)
	for _, p := range s.fov.SSCVisionMap(origin, radius, transparent, false) {
		visible.Put(p)
	}
	return visible
}
