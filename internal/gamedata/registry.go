package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds monster definitions and picks spawns by weight.
type MonsterRegistry struct {
	monsters    []ActorDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []ActorDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry builds a registry from the embedded actors.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	file, err := LoadActors()
	if err != nil {
		return nil, err
	}
	if len(file.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from actors.json")
	}
	return NewMonsterRegistry(file.Monsters), nil
}

// SpawnRandom selects a monster definition; higher spawnWeight is more likely.
// It returns nil when no monster has positive weight.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *ActorDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	for i := range r.monsters {
		roll -= r.monsters[i].SpawnWeight
		if roll < 0 {
			return &r.monsters[i]
		}
	}
	return &r.monsters[len(r.monsters)-1]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *ActorDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster kinds in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
