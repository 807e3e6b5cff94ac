package termidle

import "github.com/vovakirdan/termidle/internal/core"

// Base enemy stats. Every encounter uses the same enemy.
const (
	EnemyBaseHealth = 11
	EnemyBaseAttack = 10
)

// Enemy is constructed for a single encounter and discarded afterwards.
type Enemy struct {
	Health int
	Attack int
}

// NewEnemy returns the enemy for the next encounter.
// Stats are fixed and do not scale with the player's level.
func NewEnemy() Enemy {
	return Enemy{Health: EnemyBaseHealth, Attack: EnemyBaseAttack}
}

// Fighter is the player's side of an encounter.
type Fighter struct {
	Health int
	Attack int
}

// Outcome is the result of an encounter from the player's point of view.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == OutcomeWin {
		return "win"
	}
	return "loss"
}

// FightResult describes a resolved encounter.
type FightResult struct {
	Outcome   Outcome
	Exchanges int // Hits dealt by both sides
}

// Fight resolves an encounter by alternating full-damage hits, player first,
// until one side reaches zero health. Both fighters are mutated in place.
//
// If neither side can hurt the other the fight would never end, so it counts
// as a loss without any exchange.
func Fight(player *Fighter, enemy *Enemy) FightResult {
	var res FightResult
	if player.Attack <= 0 && enemy.Attack <= 0 {
		res.Outcome = OutcomeLoss
		return res
	}

	for {
		enemy.Health = core.SaturatingSub(enemy.Health, player.Attack)
		res.Exchanges++
		if enemy.Health == 0 {
			res.Outcome = OutcomeWin
			return res
		}

		player.Health = core.SaturatingSub(player.Health, enemy.Attack)
		res.Exchanges++
		if player.Health == 0 {
			res.Outcome = OutcomeLoss
			return res
		}
	}
}

// MaxExchanges is the upper bound on exchanges for a fight between the given
// stats: ceil(enemyHealth/playerAttack) + ceil(playerHealth/enemyAttack).
func MaxExchanges(playerHealth, playerAttack, enemyHealth, enemyAttack int) int {
	return core.CeilDiv(enemyHealth, playerAttack) + core.CeilDiv(playerHealth, enemyAttack)
}
