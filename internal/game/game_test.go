package game

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"

	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/fov"
	"github.com/Just-a-Unity-Dev/aeros/internal/gamedata"
	"github.com/Just-a-Unity-Dev/aeros/internal/input"
	"github.com/Just-a-Unity-Dev/aeros/internal/state"
	"github.com/Just-a-Unity-Dev/aeros/internal/ui"
	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// scripted replays a fixed list of intents, then quits.
type scripted struct {
	intents []input.Intent
}

func (s *scripted) Next() input.Intent {
	if len(s.intents) == 0 {
		return input.Intent{Kind: input.Quit}
	}
	in := s.intents[0]
	s.intents = s.intents[1:]
	return in
}

// frames counts rendered frames.
type frames struct {
	n    int
	last ui.Frame
}

func (f *frames) Render(frame ui.Frame) {
	f.n++
	f.last = frame
}

// seeAll sees every in-bounds cell and counts calls.
type seeAll struct {
	calls int
}

func (s *seeAll) Compute(m *world.Map, origin gruid.Point, radius int) mapset.Set[gruid.Point] {
	s.calls++
	out := mapset.New[gruid.Point]()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out.Put(gruid.Point{X: x, Y: y})
		}
	}
	return out
}

var (
	playerDef = &gamedata.ActorDef{Name: "player", Glyph: "@", HP: 30, Defense: 2, Power: 5}
	orcDef    = &gamedata.ActorDef{Name: "orc", Glyph: "o", HP: 10, Defense: 0, Power: 3}
)

func pt(x, y int) gruid.Point { return gruid.Point{X: x, Y: y} }

func testConfig() Config {
	return Config{MapWidth: 20, MapHeight: 20, FOVRadius: 8, MonsterFOVRadius: 8, MessageLogLimit: 50}
}

// newTestGame builds a game over m with the player added first and then the monsters.
func newTestGame(m *world.Map, oracle fov.Oracle, src input.Source, playerPos gruid.Point, monsters ...gruid.Point) (*Game, []*entity.Actor) {
	g := newGame(testConfig(), oracle, src, nil)
	g.world = state.New(m, 50)
	g.actors = entity.NewActors()
	g.actors.AddPlayer(entity.NewPlayer(playerDef, playerPos))

	var out []*entity.Actor
	for _, p := range monsters {
		mon := entity.NewMonster(orcDef, p)
		g.actors.Add(mon)
		out = append(out, mon)
	}
	return g, out
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{TookTurn, "took_turn"},
		{DidntTakeTurn, "didnt_take_turn"},
		{Exit, "exit"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestQuitExitsWithoutAIPhase(t *testing.T) {
	oracle := &seeAll{}
	g, monsters := newTestGame(world.NewMap(10, 10), oracle, nil, pt(4, 4), pt(5, 4))

	if got := g.HandleIntent(context.Background(), input.Intent{Kind: input.Quit}); got != Exit {
		t.Fatalf("HandleIntent(quit) = %v, want Exit", got)
	}
	if g.turn.aiPasses != 0 || oracle.calls != 0 {
		t.Error("quit must not run the AI phase")
	}
	if g.actors.Player().Fighter.HP != 30 || monsters[0].Pos != pt(5, 4) {
		t.Error("quit changed world state")
	}
}

func TestNonTurnInputsChangeNothing(t *testing.T) {
	oracle := &seeAll{}
	g, monsters := newTestGame(world.NewMap(10, 10), oracle, nil, pt(4, 4), pt(7, 7))
	player := g.actors.Player()

	for _, in := range []input.Intent{
		{Kind: input.None},
		{Kind: input.Redraw},
		{Kind: input.ToggleLog},
		{Kind: input.Kind(42)},
	} {
		if got := g.HandleIntent(context.Background(), in); got != DidntTakeTurn {
			t.Errorf("HandleIntent(%v) = %v, want DidntTakeTurn", in.Kind, got)
		}
	}

	if player.Pos != pt(4, 4) || player.Fighter.HP != 30 {
		t.Error("player state changed")
	}
	if monsters[0].Pos != pt(7, 7) || monsters[0].Fighter.HP != 10 {
		t.Error("monster state changed")
	}
	if g.turns != 0 || g.turn.aiPasses != 0 || oracle.calls != 0 {
		t.Error("no turn should have advanced")
	}
	if g.showLog {
		t.Error("ToggleLog should have hidden the log")
	}
}

func TestMoveRunsExactlyOneAIPass(t *testing.T) {
	oracle := &seeAll{}
	g, monsters := newTestGame(world.NewMap(20, 20), oracle, nil,
		pt(10, 10), pt(2, 2), pt(18, 10), pt(10, 18))

	if got := g.HandleIntent(context.Background(), input.Direction(0, -1)); got != TookTurn {
		t.Fatalf("HandleIntent(move) = %v, want TookTurn", got)
	}

	if g.turn.aiPasses != 1 {
		t.Errorf("aiPasses = %d, want 1", g.turn.aiPasses)
	}
	if oracle.calls != len(monsters) {
		t.Errorf("monster visibility computed %d times, want %d", oracle.calls, len(monsters))
	}
	want := []gruid.Point{pt(3, 3), pt(17, 9), pt(10, 17)}
	for i, m := range monsters {
		if m.Pos != want[i] {
			t.Errorf("monster %d at %v, want %v", i, m.Pos, want[i])
		}
	}
	if g.Turn() != 1 {
		t.Errorf("Turn() = %d, want 1", g.Turn())
	}
}

func TestStationaryMonsterVisibilityComputedOnce(t *testing.T) {
	m := world.NewFilledMap(20, 20)
	m.SetFloor(pt(1, 1))
	m.SetFloor(pt(15, 15))
	oracle := &seeAll{}
	g, monsters := newTestGame(m, oracle, nil, pt(1, 1), pt(15, 15))

	for i := 0; i < 5; i++ {
		if got := g.HandleIntent(context.Background(), input.Direction(-1, 0)); got != TookTurn {
			t.Fatalf("turn %d: HandleIntent() = %v, want TookTurn", i, got)
		}
	}

	if monsters[0].Pos != pt(15, 15) {
		t.Fatalf("walled-off monster moved to %v", monsters[0].Pos)
	}
	if g.turn.aiPasses != 5 {
		t.Errorf("aiPasses = %d, want 5", g.turn.aiPasses)
	}
	if oracle.calls != 1 {
		t.Errorf("stationary monster visibility computed %d times over 5 turns, want 1", oracle.calls)
	}
}

func TestBlockedMoveStillTakesTurn(t *testing.T) {
	m := world.NewMap(10, 10)
	m.SetWall(pt(5, 5))
	g, _ := newTestGame(m, &seeAll{}, nil, pt(4, 5))

	if got := g.HandleIntent(context.Background(), input.Direction(1, 0)); got != TookTurn {
		t.Errorf("blocked move = %v, want TookTurn", got)
	}
	if pos := g.actors.Player().Pos; pos != pt(4, 5) {
		t.Errorf("player at %v, want (4,5)", pos)
	}
	if g.turns != 1 || g.turn.aiPasses != 1 {
		t.Error("blocked move should advance the turn and run the AI phase")
	}
}

func TestBumpAttacksMonster(t *testing.T) {
	g, monsters := newTestGame(world.NewMap(10, 10), &seeAll{}, nil, pt(4, 5), pt(5, 5))

	g.HandleIntent(context.Background(), input.Direction(1, 0))

	if g.actors.Player().Pos != pt(4, 5) {
		t.Error("bump attack should not move the player")
	}
	// player power 5 - orc defense 0
	if monsters[0].Fighter.HP != 5 {
		t.Errorf("orc hp = %d, want 5", monsters[0].Fighter.HP)
	}
	// orc retaliates in the AI phase: power 3 - defense 2
	if hp := g.actors.Player().Fighter.HP; hp != 29 {
		t.Errorf("player hp = %d, want 29", hp)
	}
}

func TestWalkOverRemains(t *testing.T) {
	g, monsters := newTestGame(world.NewMap(10, 10), &seeAll{}, nil, pt(4, 5), pt(5, 5))
	monsters[0].Fighter.HP = 1

	g.HandleIntent(context.Background(), input.Direction(1, 0))
	if monsters[0].Alive {
		t.Fatal("orc should have died")
	}

	g.HandleIntent(context.Background(), input.Direction(1, 0))
	if pos := g.actors.Player().Pos; pos != pt(5, 5) {
		t.Errorf("player at %v, want to stand on the remains at (5,5)", pos)
	}
}

func TestAIPassSeesEarlierMoves(t *testing.T) {
	// A one-cell corridor along y=1. C can only advance once A has stepped out of its way.
	m := world.NewFilledMap(10, 10)
	for x := 1; x <= 8; x++ {
		m.SetFloor(pt(x, 1))
	}
	m.SetFloor(pt(8, 8))

	g, monsters := newTestGame(m, &seeAll{}, nil, pt(1, 1), pt(3, 1), pt(8, 8), pt(4, 1))
	a, b, c := monsters[0], monsters[1], monsters[2]

	// Bumping the wall spends the turn without moving.
	if got := g.HandleIntent(context.Background(), input.Direction(-1, 0)); got != TookTurn {
		t.Fatalf("HandleIntent() = %v, want TookTurn", got)
	}

	if a.Pos != pt(2, 1) {
		t.Errorf("A at %v, want (2,1)", a.Pos)
	}
	if b.Pos != pt(8, 8) {
		t.Errorf("walled-in B moved to %v", b.Pos)
	}
	if c.Pos != pt(3, 1) {
		t.Errorf("C at %v, want (3,1): it must see the cell A vacated this turn", c.Pos)
	}
}

func TestMonsterKillsPlayerMidPass(t *testing.T) {
	g, _ := newTestGame(world.NewMap(10, 10), &seeAll{}, nil, pt(0, 5), pt(1, 4), pt(1, 6))
	player := g.actors.Player()
	player.Fighter.HP = 1

	// Moving off the map is blocked but spends the turn.
	g.HandleIntent(context.Background(), input.Direction(-1, 0))

	if player.Alive || !g.world.GameOver {
		t.Fatal("first monster should kill the player")
	}
	attacks := 0
	for _, msg := range g.world.Log.Messages() {
		if strings.Contains(msg.Text, "attacks") {
			attacks++
		}
	}
	if attacks != 1 {
		t.Errorf("%d attacks logged, want 1: later monsters ignore a dead player", attacks)
	}

	passes := g.turn.aiPasses
	if got := g.HandleIntent(context.Background(), input.Direction(1, 0)); got != DidntTakeTurn {
		t.Errorf("move while dead = %v, want DidntTakeTurn", got)
	}
	if g.turn.aiPasses != passes {
		t.Error("AI phase ran after the player died")
	}
	if got := g.HandleIntent(context.Background(), input.Intent{Kind: input.Quit}); got != Exit {
		t.Errorf("quit while dead = %v, want Exit", got)
	}
}

func TestVisibilityRecomputedOnlyAfterMoving(t *testing.T) {
	oracle := &seeAll{}
	src := &scripted{intents: []input.Intent{
		{Kind: input.None},
		{Kind: input.ToggleLog},
		input.Direction(1, 0),
		input.Direction(0, 0),
	}}
	r := &frames{}
	g, _ := newTestGame(world.NewMap(10, 10), oracle, src, pt(4, 4))
	g.renderer = r

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Iterations: initial pass, none, toggle, move (recompute next), wait, quit.
	if g.turn.fovPasses != 2 {
		t.Errorf("fovPasses = %d, want 2", g.turn.fovPasses)
	}
	if r.n != 5 {
		t.Errorf("rendered %d frames, want 5", r.n)
	}
	if g.turns != 2 {
		t.Errorf("turns = %d, want 2", g.turns)
	}
	if r.last.Player.Pos != pt(5, 4) {
		t.Errorf("last frame player at %v, want (5,4)", r.last.Player.Pos)
	}
}

func TestExploredNeverReverts(t *testing.T) {
	m := world.NewMap(20, 20)
	for y := 0; y < 10; y++ {
		m.SetWall(pt(10, y))
	}
	moves := []input.Intent{}
	for i := 0; i < 8; i++ {
		moves = append(moves, input.Direction(0, 1))
	}
	for i := 0; i < 8; i++ {
		moves = append(moves, input.Direction(1, 0))
	}

	g, _ := newTestGame(m, fov.NewShadowCaster(), &scripted{intents: moves}, pt(5, 5))
	g.cfg.FOVRadius = 6

	explored := map[gruid.Point]bool{}
	for {
		action := g.Step(context.Background())
		for p := range explored {
			if !m.TileAt(p).Explored {
				t.Fatalf("tile %v lost its explored flag", p)
			}
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if m.Tiles[y][x].Explored {
					explored[pt(x, y)] = true
				}
			}
		}
		if action == Exit {
			break
		}
	}

	if pos := g.actors.Player().Pos; pos != pt(13, 13) {
		t.Fatalf("player at %v, want (13,13)", pos)
	}
	if !m.TileAt(pt(14, 13)).Explored {
		t.Error("cells around the final position should be explored")
	}
}
