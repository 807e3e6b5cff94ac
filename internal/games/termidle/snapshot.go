package termidle

// Status is the session status.
type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusVictory:
		return "victory"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusGameOver
}

// Snapshot is a read-only copy of the game state handed to the renderer.
// It shares no memory with the Game.
type Snapshot struct {
	Level  int
	Health int
	Attack int
	Status Status
	Ticks  uint64
	Logs   []LogEntry // Newest first
}

// Snapshot returns the current game state as an independent copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Level:  g.level,
		Health: g.health,
		Attack: g.attack,
		Status: g.status,
		Ticks:  g.ticks,
		Logs:   g.Logs(),
	}
}
