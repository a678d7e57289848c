package world

import (
	"context"
	"math/rand"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)

	d1 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	d2 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))

	ctx := context.Background()
	d1.Generate(ctx)
	d2.Generate(ctx)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}

	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}

	for y := 0; y < d1.Map.Height; y++ {
		for x := 0; x < d1.Map.Width; x++ {
			if d1.Map.Tiles[y][x] != d2.Map.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestDungeonBorderIsSolid(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(7)))
	d.Generate(context.Background())

	if len(d.Rooms) == 0 {
		t.Fatal("Generate() produced no rooms")
	}

	for x := 0; x < d.Map.Width; x++ {
		for _, y := range []int{0, d.Map.Height - 1} {
			if d.Map.IsPassable(gruid.Point{X: x, Y: y}) {
				t.Errorf("border cell (%d,%d) is passable", x, y)
			}
		}
	}
	for y := 0; y < d.Map.Height; y++ {
		for _, x := range []int{0, d.Map.Width - 1} {
			if d.Map.IsPassable(gruid.Point{X: x, Y: y}) {
				t.Errorf("border cell (%d,%d) is passable", x, y)
			}
		}
	}
}

func TestDungeonRoomsAreCarved(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(99)))
	d.Generate(context.Background())

	for i, room := range d.Rooms {
		if !d.Map.IsPassable(room.Center()) {
			t.Errorf("room %d center %v is not passable", i, room.Center())
		}
		if got := d.RoomIndexAt(room.Center()); got != i {
			t.Errorf("RoomIndexAt(center of room %d) = %d", i, got)
		}
		p := d.RandomPointInRoom(i)
		if !room.Contains(p) || !d.Map.IsPassable(p) {
			t.Errorf("RandomPointInRoom(%d) = %v, not a floor cell of the room", i, p)
		}
	}
}
