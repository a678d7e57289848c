package fov

import (
	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"

	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

type view struct {
	m       *world.Map
	origin  gruid.Point
	radius  int
	visible mapset.Set[gruid.Point]
}

// Cache remembers each viewer's last visible set and asks the Oracle again
// only when the viewer has moved. Terrain is fixed once generated, so a set
// computed from the same origin stays valid.
type Cache[K comparable] struct {
	oracle Oracle
	views  map[K]view
	passes int
}

// NewCache wraps oracle with a per-viewer cache.
func NewCache[K comparable](oracle Oracle) *Cache[K] {
	return &Cache[K]{oracle: oracle, views: make(map[K]view)}
}

// Visible returns the cells key sees from origin. The second result reports
// whether the set was recomputed.
func (c *Cache[K]) Visible(m *world.Map, key K, origin gruid.Point, radius int) (mapset.Set[gruid.Point], bool) {
	if v, ok := c.views[key]; ok && v.m == m && v.origin == origin && v.radius == radius {
		return v.visible, false
	}

	visible := c.oracle.Compute(m, origin, radius)
	c.views[key] = view{m: m, origin: origin, radius: radius, visible: visible}
	c.passes++
	return visible, true
}

// Forget drops the cached set for key.
func (c *Cache[K]) Forget(key K) {
	delete(c.views, key)
}

// Passes returns how many times the Oracle has been consulted.
func (c *Cache[K]) Passes() int {
	return c.passes
}
