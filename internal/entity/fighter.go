package entity

// DeathBehavior selects what happens when a fighter's hit points reach zero.
type DeathBehavior int

const (
	// DeathPlayer ends the run.
	DeathPlayer DeathBehavior = iota
	// DeathMonster turns the actor into remains.
	DeathMonster
)

// String returns a human-readable behavior name.
func (d DeathBehavior) String() string {
	switch d {
	case DeathPlayer:
		return "player"
	case DeathMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Fighter holds combat stats. HP stays within [0, MaxHP].
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathBehavior
}

// TakeDamage lowers HP, clamped at zero.
// It returns true only when this call brought HP to zero.
func (f *Fighter) TakeDamage(amount int) bool {
	if amount <= 0 || f.HP == 0 {
		return false
	}
	f.HP -= amount
	if f.HP <= 0 {
		f.HP = 0
		return true
	}
	return false
}

// AIState is the behavior a monster settles on for one turn.
type AIState int

const (
	// AIIdle means the player is not visible.
	AIIdle AIState = iota
	// AIChasing means the monster steps toward the player.
	AIChasing
	// AIAttacking means the monster is adjacent and strikes.
	AIAttacking
)

// String returns a human-readable state name.
func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIChasing:
		return "chasing"
	case AIAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}
