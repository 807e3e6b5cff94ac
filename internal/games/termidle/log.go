package termidle

// LogCategory classifies a log entry so the renderer can style it.
type LogCategory int

const (
	CategorySystem LogCategory = iota // Session lifecycle
	CategoryStatus                    // Level changes
	CategoryFight                     // Fight outcomes
)

// String returns a human-readable name for the category.
func (c LogCategory) String() string {
	switch c {
	case CategorySystem:
		return "system"
	case CategoryStatus:
		return "status"
	case CategoryFight:
		return "fight"
	default:
		return "unknown"
	}
}

// LogEntry is one immutable line of the event log.
type LogEntry struct {
	Category LogCategory
	Message  string
}
