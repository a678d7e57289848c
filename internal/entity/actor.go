// Package entity provides the actors that inhabit the dungeon.
package entity

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/Just-a-Unity-Dev/aeros/internal/gamedata"
)

// ID is a stable actor identifier.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Actor is anything placed on the map: the player, monsters and their remains.
type Actor struct {
	ID       ID
	Name     string
	Glyph    rune
	Color    tcell.Color
	Pos      gruid.Point
	Blocking bool // Prevents other actors from entering its cell
	Alive    bool

	Fighter *Fighter // nil for inert actors
	AI      *AI      // nil for the player and remains
}

// AI marks an actor as computer controlled.
// State holds the behavior derived on the actor's most recent turn.
type AI struct {
	State AIState
}

// NewPlayer creates the player actor from its definition.
func NewPlayer(def *gamedata.ActorDef, pos gruid.Point) *Actor {
	a := newFromDef(def, pos)
	a.Fighter.OnDeath = DeathPlayer
	return a
}

// NewMonster creates an AI-driven monster from its definition.
func NewMonster(def *gamedata.ActorDef, pos gruid.Point) *Actor {
	a := newFromDef(def, pos)
	a.Fighter.OnDeath = DeathMonster
	a.AI = &AI{State: AIIdle}
	return a
}

func newFromDef(def *gamedata.ActorDef, pos gruid.Point) *Actor {
	return &Actor{
		ID:       NewID(),
		Name:     def.Name,
		Glyph:    def.GlyphRune(),
		Color:    def.TCellColor(),
		Pos:      pos,
		Blocking: true,
		Alive:    true,
		Fighter: &Fighter{
			MaxHP:   def.HP,
			HP:      def.HP,
			Defense: def.Defense,
			Power:   def.Power,
		},
	}
}

// Kill flips the actor to dead. It returns false if the actor was already dead.
func (a *Actor) Kill() bool {
	if !a.Alive {
		return false
	}
	a.Alive = false
	return true
}

// IsFighter reports whether the actor can attack and be attacked.
func (a *Actor) IsFighter() bool {
	return a.Alive && a.Fighter != nil
}
