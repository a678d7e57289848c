package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/gamedata"
	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
	"github.com/Just-a-Unity-Dev/aeros/internal/state"
	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// newWorld generates the dungeon and places the player and monsters.
func newWorld(ctx context.Context, cfg Config) (*state.Game, *entity.Actors, error) {
	defs, err := gamedata.LoadActors()
	if err != nil {
		return nil, nil, fmt.Errorf("load actor definitions: %w", err)
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("load monster registry: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Component("setup").WithFields(logrus.Fields{
		"seed":   seed,
		"width":  cfg.MapWidth,
		"height": cfg.MapHeight,
	}).Info("Generating dungeon.")

	dungeon := world.NewDungeon(cfg.MapWidth, cfg.MapHeight, rand.New(rand.NewSource(seed)))
	dungeon.Generate(ctx)

	actors := populate(dungeon, &defs.Player, monsters, cfg.MaxRoomMonsters)

	g := state.New(dungeon.Map, cfg.MessageLogLimit)
	g.Log.Add("Welcome, stranger. Prepare to perish in the depths of Aeros.", tcell.ColorRed)
	return g, actors, nil
}

// populate puts the player at the center of the first room and up to
// maxPerRoom monsters in each other room. The player is added first.
func populate(d *world.Dungeon, player *gamedata.ActorDef, monsters *gamedata.MonsterRegistry, maxPerRoom int) *entity.Actors {
	actors := entity.NewActors()
	actors.AddPlayer(entity.NewPlayer(player, startPosition(d)))

	rng := d.Rand()
	for i := 1; i < len(d.Rooms); i++ {
		n := rng.Intn(maxPerRoom + 1)
		for j := 0; j < n; j++ {
			p := d.RandomPointInRoom(i)
			if !actors.IsPassable(d.Map, p) {
				continue
			}
			if def := monsters.SpawnRandom(rng); def != nil {
				actors.Add(entity.NewMonster(def, p))
			}
		}
	}
	return actors
}

// startPosition returns the first room's center, or the first floor cell
// if the generator produced no rooms.
func startPosition(d *world.Dungeon) gruid.Point {
	if len(d.Rooms) > 0 {
		return d.Rooms[0].Center()
	}
	for y := 0; y < d.Map.Height; y++ {
		for x := 0; x < d.Map.Width; x++ {
			if p := (gruid.Point{X: x, Y: y}); d.Map.IsPassable(p) {
				return p
			}
		}
	}
	panic("game: generated map has no floor")
}
