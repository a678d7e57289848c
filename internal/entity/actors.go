package entity

import (
	"fmt"

	"codeberg.org/anaseto/gruid"

	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// Actors is the ordered actor collection. Iteration order is insertion order
// and is the order in which monsters act.
type Actors struct {
	PlayerID ID

	order []ID
	byID  map[ID]*Actor
}

// NewActors creates an empty collection.
func NewActors() *Actors {
	return &Actors{byID: make(map[ID]*Actor)}
}

// Add appends an actor. Adding the same id twice is a bug.
func (a *Actors) Add(actor *Actor) {
	if _, dup := a.byID[actor.ID]; dup {
		panic(fmt.Sprintf("entity: duplicate actor id %s", actor.ID))
	}
	a.order = append(a.order, actor.ID)
	a.byID[actor.ID] = actor
}

// AddPlayer appends the player and records its id.
func (a *Actors) AddPlayer(actor *Actor) {
	a.Add(actor)
	a.PlayerID = actor.ID
}

// Get returns the actor with the given id. Unknown ids are a bug.
func (a *Actors) Get(id ID) *Actor {
	actor, ok := a.byID[id]
	if !ok {
		panic(fmt.Sprintf("entity: unknown actor id %q", id))
	}
	return actor
}

// Lookup returns the actor with the given id, if present.
func (a *Actors) Lookup(id ID) (*Actor, bool) {
	actor, ok := a.byID[id]
	return actor, ok
}

// Player returns the player actor.
func (a *Actors) Player() *Actor {
	return a.Get(a.PlayerID)
}

// All returns the actors in collection order.
func (a *Actors) All() []*Actor {
	out := make([]*Actor, len(a.order))
	for i, id := range a.order {
		out[i] = a.byID[id]
	}
	return out
}

// Len returns the number of actors.
func (a *Actors) Len() int {
	return len(a.order)
}

// BlockingAt returns the blocking actor occupying p, or nil.
func (a *Actors) BlockingAt(p gruid.Point) *Actor {
	for _, id := range a.order {
		if actor := a.byID[id]; actor.Blocking && actor.Pos == p {
			return actor
		}
	}
	return nil
}

// FighterAt returns a living fighter occupying p, or nil.
func (a *Actors) FighterAt(p gruid.Point) *Actor {
	for _, id := range a.order {
		if actor := a.byID[id]; actor.IsFighter() && actor.Pos == p {
			return actor
		}
	}
	return nil
}

// IsPassable is the single passability rule for every mover:
// the terrain must be walkable and no blocking actor may stand there.
func (a *Actors) IsPassable(m *world.Map, p gruid.Point) bool {
	return m.IsPassable(p) && a.BlockingAt(p) == nil
}

// MoveBy shifts the actor by (dx, dy) if the target is passable.
// It returns whether the actor moved.
func (a *Actors) MoveBy(m *world.Map, id ID, dx, dy int) bool {
	actor := a.Get(id)
	target := actor.Pos.Add(gruid.Point{X: dx, Y: dy})
	if !a.IsPassable(m, target) {
		return false
	}
	actor.Pos = target
	return true
}
