// Package termidle implements the idle combat simulation: a player fights a
// fixed enemy once per tick, levels up on every win and the session ends in
// victory at MaxLevel or defeat on the first loss.
//
// The package knows nothing about timing or terminal I/O. The event loop calls
// Advance once per tick and the renderer reads a Snapshot.
package termidle

import (
	"fmt"

	"github.com/vovakirdan/termidle/internal/core"
)

// MaxLevel is the level at which the session is won.
const MaxLevel = 100

// Game owns the player state, status and event log for one session.
type Game struct {
	level  int
	health int
	attack int // Constant for the session

	status Status
	ticks  uint64 // Advances that ran a fight
	log    []LogEntry
}

// New creates a game in the Playing state with the given starting stats.
// The values are not validated: a level above MaxLevel is accepted here and
// only capped by the next win.
func New(level, health, attack int) *Game {
	g := &Game{
		level:  level,
		health: health,
		attack: attack,
		status: StatusPlaying,
	}
	g.push(CategorySystem, "Game started")
	return g
}

// Advance runs one simulation tick: a single fight against a fresh enemy.
// It does nothing once the game has reached a terminal status.
func (g *Game) Advance() {
	if g.status.Terminal() {
		return
	}
	g.ticks++

	enemy := NewEnemy()
	player := Fighter{Health: g.health, Attack: g.attack}
	result := Fight(&player, &enemy)
	g.health = player.Health

	if result.Outcome == OutcomeLoss {
		g.push(CategoryFight, "Lost the fight!")
		g.status = StatusGameOver
		return
	}

	g.push(CategoryFight, "Won the fight!")
	g.level = core.Clamp(g.level+1, 1, MaxLevel)
	g.push(CategoryStatus, fmt.Sprintf("Level up! Now level %d", g.level))
	if g.level == MaxLevel {
		g.status = StatusVictory
	}
}

// push inserts a log entry at the front so the newest entry comes first.
func (g *Game) push(category LogCategory, message string) {
	g.log = append(g.log, LogEntry{})
	copy(g.log[1:], g.log)
	g.log[0] = LogEntry{Category: category, Message: message}
}

// Level returns the player's current level.
func (g *Game) Level() int {
	return g.level
}

// Health returns the player's remaining health.
func (g *Game) Health() int {
	return g.health
}

// Attack returns the player's attack value.
func (g *Game) Attack() int {
	return g.attack
}

// Status returns the session status.
func (g *Game) Status() Status {
	return g.status
}

// Ticks returns how many advances ran a fight.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Logs returns a copy of the event log, newest entry first.
func (g *Game) Logs() []LogEntry {
	out := make([]LogEntry, len(g.log))
	copy(out, g.log)
	return out
}

// LogLen returns the number of log entries without copying them.
func (g *Game) LogLen() int {
	return len(g.log)
}
