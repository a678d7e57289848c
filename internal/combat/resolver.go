// Package combat resolves melee attacks and deaths.
package combat

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
	"github.com/Just-a-Unity-Dev/aeros/internal/state"
)

// Remains appearance.
const (
	CorpseGlyph = '%'
	CorpseColor = tcell.ColorDarkRed
)

// Message colors.
var (
	ColorAttack      = tcell.ColorWhite
	ColorMonsterDies = tcell.ColorOrange
	ColorPlayerDies  = tcell.ColorRed
)

var title = cases.Title(language.English)

// Result describes one resolved attack.
type Result struct {
	Attacker entity.ID
	Defender entity.ID
	Damage   int  // Hit points removed
	Killed   bool // The defender died from this attack
}

// Damage returns the hit points an attack removes: power minus defense, never negative.
func Damage(attacker, defender *entity.Fighter) int {
	return max(0, attacker.Power-defender.Defense)
}

// Attack resolves a melee attack, narrates it, and dispatches death if the defender falls.
// Both actors must be living fighters.
func Attack(g *state.Game, actors *entity.Actors, attackerID, defenderID entity.ID) Result {
	attacker := actors.Get(attackerID)
	defender := actors.Get(defenderID)
	if !attacker.IsFighter() || !defender.IsFighter() {
		panic(fmt.Sprintf("combat: attack %s -> %s requires two living fighters", attacker.Name, defender.Name))
	}

	damage := Damage(attacker.Fighter, defender.Fighter)
	hpBefore := defender.Fighter.HP
	died := defender.Fighter.TakeDamage(damage)

	if damage > 0 {
		g.Log.Add(fmt.Sprintf("%s attacks %s for %d hit points.", title.String(attacker.Name), defender.Name, damage), ColorAttack)
	} else {
		g.Log.Add(fmt.Sprintf("%s attacks %s for 0 hit points (no effect).", title.String(attacker.Name), defender.Name), ColorAttack)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat",
		"attacker_id": attacker.ID,
		"defender_id": defender.ID,
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    defender.Fighter.HP,
		"died":        died,
	}).Debug("Attack resolved.")

	if died {
		ResolveDeath(g, defender, defender.Fighter.OnDeath)
	}

	return Result{
		Attacker: attackerID,
		Defender: defenderID,
		Damage:   damage,
		Killed:   died,
	}
}

// ResolveDeath applies the death behavior to an actor.
// Calling it on an actor that is already dead does nothing.
func ResolveDeath(g *state.Game, a *entity.Actor, behavior entity.DeathBehavior) {
	if !a.Kill() {
		return
	}

	switch behavior {
	case entity.DeathPlayer:
		g.Log.Add("You died!", ColorPlayerDies)
		a.Glyph = CorpseGlyph
		a.Color = CorpseColor
		g.GameOver = true
	case entity.DeathMonster:
		g.Log.Add(fmt.Sprintf("%s is dead!", title.String(a.Name)), ColorMonsterDies)
		a.Glyph = CorpseGlyph
		a.Color = CorpseColor
		a.Blocking = false
		a.Fighter = nil
		a.AI = nil
		a.Name = "remains of " + a.Name
	default:
		panic(fmt.Sprintf("combat: unknown death behavior %d", behavior))
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"actor_id":  a.ID,
		"behavior":  behavior.String(),
	}).Info("Actor died.")
}
