package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ActorDef defines the player or a monster kind, loaded from JSON.
type ActorDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name used in messages
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#40FF40")
	HP          int    `json:"hp"`          // Maximum hit points
	Defense     int    `json:"defense"`     // Subtracted from incoming power
	Power       int    `json:"power"`       // Attack strength
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency; unused for the player
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ActorDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, white if malformed.
func (d *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Player   ActorDef   `json:"player"`
	Monsters []ActorDef `json:"monsters"`
}

// LoadActors loads the player and monster definitions from the embedded actors.json.
func LoadActors() (*ActorsFile, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	if file.Player.HP <= 0 {
		return nil, errors.New("actors.json: player must have positive hp")
	}
	return &file, nil
}

// MustLoadActors loads actor definitions, panicking on error.
func MustLoadActors() *ActorsFile {
	file, err := LoadActors()
	if err != nil {
		panic(err)
	}
	return file
}
