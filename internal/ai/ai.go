// Package ai decides and performs monster turns.
package ai

import (
	"cmp"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/Just-a-Unity-Dev/aeros/internal/combat"
	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/fov"
	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
	"github.com/Just-a-Unity-Dev/aeros/internal/state"
)

// directions lists the eight neighbour offsets in a fixed order.
var directions = []gruid.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Decide derives a monster's behavior from what it can see this turn.
func Decide(monster, player *entity.Actor, visible mapset.Set[gruid.Point]) entity.AIState {
	if !player.Alive || !visible.Has(player.Pos) {
		return entity.AIIdle
	}
	if paths.DistanceChebyshev(monster.Pos, player.Pos) <= 1 {
		return entity.AIAttacking
	}
	return entity.AIChasing
}

// TakeTurn runs one monster's turn against the live world: it may attack the
// player or step toward it. Actors without AI, or no longer alive, do nothing.
// The monster's visible set comes from views and is recomputed only after it moved.
func TakeTurn(id entity.ID, g *state.Game, actors *entity.Actors, views *fov.Cache[entity.ID], radius int) {
	monster := actors.Get(id)
	if monster.AI == nil || !monster.IsFighter() {
		views.Forget(id)
		return
	}
	player := actors.Player()

	visible, _ := views.Visible(g.Map, monster.ID, monster.Pos, radius)
	behavior := Decide(monster, player, visible)
	monster.AI.State = behavior

	log := logger.Log.WithFields(logrus.Fields{
		"component": "ai",
		"actor_id":  monster.ID,
		"state":     behavior.String(),
		"pos":       monster.Pos,
	})

	switch behavior {
	case entity.AIAttacking:
		combat.Attack(g, actors, monster.ID, player.ID)
	case entity.AIChasing:
		if !stepToward(g, actors, monster, player.Pos) {
			log.Debug("No step toward the player is open.")
			return
		}
	}
	log.Debug("Monster acted.")
}

// stepToward moves the monster one cell closer to target in Chebyshev distance.
// Diagonal approaches are preferred, then straight ones; the first open candidate wins.
func stepToward(g *state.Game, actors *entity.Actors, monster *entity.Actor, target gruid.Point) bool {
	current := paths.DistanceChebyshev(monster.Pos, target)

	type candidate struct {
		delta     gruid.Point
		chebyshev int
		manhattan int
	}
	candidates := make([]candidate, 0, len(directions))
	for _, d := range directions {
		next := monster.Pos.Add(d)
		dist := paths.DistanceChebyshev(next, target)
		if dist >= current {
			continue
		}
		candidates = append(candidates, candidate{
			delta:     d,
			chebyshev: dist,
			manhattan: paths.DistanceManhattan(next, target),
		})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.chebyshev, b.chebyshev); c != 0 {
			return c
		}
		return cmp.Compare(a.manhattan, b.manhattan)
	})

	for _, c := range candidates {
		if actors.MoveBy(g.Map, monster.ID, c.delta.X, c.delta.Y) {
			return true
		}
	}
	return false
}
