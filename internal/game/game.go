package game

import (
	"context"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Just-a-Unity-Dev/aeros/internal/ai"
	"github.com/Just-a-Unity-Dev/aeros/internal/combat"
	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/fov"
	"github.com/Just-a-Unity-Dev/aeros/internal/input"
	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
	"github.com/Just-a-Unity-Dev/aeros/internal/state"
	"github.com/Just-a-Unity-Dev/aeros/internal/telemetry"
	"github.com/Just-a-Unity-Dev/aeros/internal/ui"
)

// Renderer draws a frame. ui.Renderer is the terminal implementation.
type Renderer interface {
	Render(f ui.Frame)
}

// turnContext is scheduler state carried from one iteration to the next.
type turnContext struct {
	views     *fov.Cache[entity.ID] // Per-actor visible sets, recomputed after a move
	visible   mapset.Set[gruid.Point]
	fovPasses int // Player visibility recomputations
	aiPasses  int
}

// Game holds the entire game state.
type Game struct {
	cfg    Config
	world  *state.Game
	actors *entity.Actors

	input    input.Source
	renderer Renderer
	screen   *ui.Screen
	tracer   trace.Tracer

	turn    turnContext
	turns   int
	showLog bool
}

// New creates a game bound to the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, fov.NewShadowCaster(), ui.NewKeyboard(screen), ui.NewRenderer(screen))
	g.screen = screen
	g.tracer = telemetry.Tracer("game")
	return g, nil
}

func newGame(cfg Config, oracle fov.Oracle, src input.Source, r Renderer) *Game {
	return &Game{
		cfg:      cfg,
		turn:     turnContext{views: fov.NewCache[entity.ID](oracle)},
		input:    src,
		renderer: r,
		tracer:   telemetry.NoopTracer(),
		showLog:  true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	if g.screen != nil {
		defer g.screen.Close()
	}

	if g.world == nil {
		ctx, initSpan := g.tracer.Start(ctx, "game.init")
		w, actors, err := newWorld(ctx, g.cfg)
		if err != nil {
			initSpan.End()
			return err
		}
		g.world, g.actors = w, actors
		initSpan.SetAttributes(
			attribute.Int("actors", actors.Len()),
			attribute.Int("player.start_x", actors.Player().Pos.X),
			attribute.Int("player.start_y", actors.Player().Pos.Y),
		)
		initSpan.End()
	}

	for {
		if action := g.Step(ctx); action == Exit {
			break
		}
	}

	logger.Component("game").WithField("turns", g.turns).Info("Game loop exited.")
	return nil
}

// Step runs one scheduler iteration: refresh visibility, render, block for
// one input, then apply it.
func (g *Game) Step(ctx context.Context) Action {
	g.refreshVisibility()
	g.render()
	return g.HandleIntent(ctx, g.input.Next())
}

// HandleIntent classifies and applies one player input. When the player took
// a turn and is still alive, every AI actor then acts once, in collection order.
func (g *Game) HandleIntent(ctx context.Context, in input.Intent) Action {
	ctx, span := g.tracer.Start(ctx, "turn")
	defer span.End()

	action := g.playerAct(ctx, in)

	player := g.actors.Player()
	span.SetAttributes(
		attribute.String("intent", in.Kind.String()),
		attribute.String("action", action.String()),
		attribute.Int("turn", g.turns),
		attribute.Int("player.x", player.Pos.X),
		attribute.Int("player.y", player.Pos.Y),
	)

	if action != TookTurn {
		return action
	}

	g.turns++
	if player.Alive {
		g.runAIPhase(ctx)
	}
	return action
}

// playerAct applies the player's intent and classifies it.
func (g *Game) playerAct(ctx context.Context, in input.Intent) Action {
	switch in.Kind {
	case input.Quit:
		return Exit
	case input.ToggleLog:
		g.showLog = !g.showLog
		return DidntTakeTurn
	case input.Move:
		player := g.actors.Player()
		if !player.Alive {
			return DidntTakeTurn
		}
		g.moveOrAttack(ctx, player, in.DX, in.DY)
		// A blocked move still spends the turn.
		return TookTurn
	default:
		return DidntTakeTurn
	}
}

// moveOrAttack bumps into a fighter at the target cell, or walks there.
func (g *Game) moveOrAttack(ctx context.Context, player *entity.Actor, dx, dy int) {
	target := player.Pos.Add(gruid.Point{X: dx, Y: dy})
	if defender := g.actors.FighterAt(target); defender != nil && defender.ID != player.ID {
		res := combat.Attack(g.world, g.actors, player.ID, defender.ID)
		trace.SpanFromContext(ctx).AddEvent("combat.attack", trace.WithAttributes(
			attribute.String("defender", string(defender.ID)),
			attribute.Int("damage", res.Damage),
			attribute.Bool("killed", res.Killed),
		))
		return
	}
	g.actors.MoveBy(g.world.Map, player.ID, dx, dy)
}

// runAIPhase lets every AI actor act once against the live world, so a
// monster sees the moves made earlier in the same pass.
func (g *Game) runAIPhase(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "ai.pass")
	defer span.End()

	acted := 0
	for _, a := range g.actors.All() {
		if a.AI == nil {
			continue
		}
		ai.TakeTurn(a.ID, g.world, g.actors, g.turn.views, g.cfg.MonsterFOVRadius)
		acted++
	}
	g.turn.aiPasses++

	span.SetAttributes(
		attribute.Int("ai.actors", acted),
		attribute.Bool("game_over", g.world.GameOver),
	)
}

// refreshVisibility recomputes the player's field of view when the player
// has moved since the last computation, and marks the result explored.
func (g *Game) refreshVisibility() {
	player := g.actors.Player()
	visible, computed := g.turn.views.Visible(g.world.Map, player.ID, player.Pos, g.cfg.FOVRadius)
	g.turn.visible = visible
	if !computed {
		return
	}

	g.world.Map.Explore(visible)
	g.turn.fovPasses++

	logger.Log.WithFields(logrus.Fields{
		"component": "fov",
		"origin":    player.Pos,
		"visible":   visible.Size(),
	}).Debug("Field of view recomputed.")
}

func (g *Game) render() {
	if g.renderer == nil {
		return
	}
	g.renderer.Render(ui.Frame{
		Map:      g.world.Map,
		Actors:   g.actors.All(),
		Player:   g.actors.Player(),
		Visible:  g.turn.visible,
		Messages: g.world.Log.Messages(),
		ShowLog:  g.showLog,
		GameOver: g.world.GameOver,
		Turn:     g.turns,
	})
}

// Turn returns the number of turns the player has taken.
func (g *Game) Turn() int {
	return g.turns
}
