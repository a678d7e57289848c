package world

import (
	"context"
	"math/rand"
	"time"

	"codeberg.org/anaseto/gruid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Just-a-Unity-Dev/aeros/internal/telemetry"
)

const (
	// Default dungeon dimensions, leaving room for the status panel.
	DefaultWidth  = 80
	DefaultHeight = 43

	// BSP parameters
	minRoomSize = 6  // Minimum room dimension
	maxRoomSize = 12 // Maximum room dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// Dungeon generates a room-and-corridor map using binary space partitioning.
type Dungeon struct {
	Map   *Map
	Rooms []Room
	rng   *rand.Rand
}

// NewDungeon creates a dungeon generator for a solid map of the given size.
// A nil rng gets a time-seeded source.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dungeon{
		Map:   NewFilledMap(width, height),
		Rooms: make([]Room, 0),
		rng:   rng,
	}
}

// Generate carves rooms and corridors into the map.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	// The outermost ring stays solid so every passable cell has in-bounds neighbours.
	root := &bspNode{
		x:      1,
		y:      1,
		width:  d.Map.Width - 2,
		height: d.Map.Height - 2,
	}

	d.splitNode(root)
	d.createRooms(root)
	d.connectRooms(root)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Map.Width),
		attribute.Int("dungeon.height", d.Map.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// RoomIndexAt returns the index of the room containing p, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(p gruid.Point) int {
	for i, room := range d.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point within the specified room.
func (d *Dungeon) RandomPointInRoom(roomIndex int) gruid.Point {
	room := d.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		p := gruid.Point{
			X: room.X + d.rng.Intn(room.Width),
			Y: room.Y + d.rng.Intn(room.Height),
		}
		if d.Map.IsPassable(p) {
			return p
		}
	}
	return room.Center()
}

// Rand exposes the generator's random source so placement stays on the same seed.
func (d *Dungeon) Rand() *rand.Rand {
	return d.rng
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node along its longer axis.
func (d *Dungeon) splitNode(node *bspNode) {
	canSplitX := node.width >= minLeafSize*2
	canSplitY := node.height >= minLeafSize*2

	var horizontal bool
	switch {
	case canSplitX && (node.width > node.height || !canSplitY):
		horizontal = false
	case canSplitY:
		horizontal = true
	default:
		return
	}

	span := node.width
	if horizontal {
		span = node.height
	}
	lo, hi := minLeafSize, span-minLeafSize
	if hi <= lo {
		return
	}
	cut := lo + d.rng.Intn(hi-lo+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: cut}
		node.right = &bspNode{x: node.x, y: node.y + cut, width: node.width, height: node.height - cut}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: cut, height: node.height}
		node.right = &bspNode{x: node.x + cut, y: node.y, width: node.width - cut, height: node.height}
	}

	d.splitNode(node.left)
	d.splitNode(node.right)
}

// createRooms places one room inside every leaf.
func (d *Dungeon) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		d.createRooms(node.left)
		d.createRooms(node.right)
		return
	}

	w := min(minRoomSize+d.rng.Intn(maxRoomSize-minRoomSize+1), node.width-2)
	h := min(minRoomSize+d.rng.Intn(maxRoomSize-minRoomSize+1), node.height-2)
	if w < minRoomSize || h < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + d.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + d.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.room = &room
	d.Rooms = append(d.Rooms, room)
	d.carveRoom(room)
}

func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.carve(gruid.Point{X: x, Y: y})
		}
	}
}

// connectRooms joins sibling subtrees bottom-up so every room is reachable.
func (d *Dungeon) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	d.connectRooms(node.left)
	d.connectRooms(node.right)

	left, right := d.anyRoom(node.left), d.anyRoom(node.right)
	if left != nil && right != nil {
		d.carveCorridor(*left, *right)
	}
}

func (d *Dungeon) anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := d.anyRoom(node.left); room != nil {
		return room
	}
	return d.anyRoom(node.right)
}

// carveCorridor digs an L-shaped tunnel between two room centers.
func (d *Dungeon) carveCorridor(a, b Room) {
	from, to := a.Center(), b.Center()

	if d.rng.Intn(2) == 0 {
		d.carveHorizontal(from.X, to.X, from.Y)
		d.carveVertical(from.Y, to.Y, to.X)
	} else {
		d.carveVertical(from.Y, to.Y, from.X)
		d.carveHorizontal(from.X, to.X, to.Y)
	}
}

func (d *Dungeon) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.carve(gruid.Point{X: x, Y: y})
	}
}

func (d *Dungeon) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.carve(gruid.Point{X: x, Y: y})
	}
}

// carve opens p unless it lies on the border ring.
func (d *Dungeon) carve(p gruid.Point) {
	if p.X > 0 && p.X < d.Map.Width-1 && p.Y > 0 && p.Y < d.Map.Height-1 {
		d.Map.SetFloor(p)
	}
}
