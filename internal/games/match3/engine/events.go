package engine

// EventKind identifies an animation hint.
type EventKind uint8

const (
	EventLevelStarted EventKind = iota
	EventSelected
	EventDeselected
	EventSwapped
	EventSwapRejected // Target not adjacent to the selection
	EventCleared      // Cells cleared by runs
	EventSpecialCreated
	EventDetonated
	EventBoosted
	EventRefilled
	EventCascadeTruncated
	EventTimerTick
	EventPaused
	EventResumed
	EventLevelComplete
	EventGameOver
	EventAllLevelsComplete
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventSelected:
		return "selected"
	case EventDeselected:
		return "deselected"
	case EventSwapped:
		return "swapped"
	case EventSwapRejected:
		return "swap_rejected"
	case EventCleared:
		return "cleared"
	case EventSpecialCreated:
		return "special_created"
	case EventDetonated:
		return "detonated"
	case EventBoosted:
		return "boosted"
	case EventRefilled:
		return "refilled"
	case EventCascadeTruncated:
		return "cascade_truncated"
	case EventTimerTick:
		return "timer_tick"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventAllLevelsComplete:
		return "all_levels_complete"
	default:
		return "unknown"
	}
}

// Event is a hint for staged visual reveal. Correctness never depends on it:
// the grid is already stable when events are delivered.
type Event struct {
	Kind    EventKind
	Addrs   []Addr
	Special Special
	Score   int
	Level   int
}

// Update is returned by every state-changing engine call.
type Update struct {
	State      SessionState
	ScoreDelta int
	Events     []Event
}

// Has reports whether the update contains an event of the given kind.
func (u Update) Has(kind EventKind) bool {
	for _, ev := range u.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func popupEvent(reason PopupReason) (EventKind, bool) {
	switch reason {
	case PopupLevelComplete:
		return EventLevelComplete, true
	case PopupGameOver:
		return EventGameOver, true
	case PopupAllLevelsComplete:
		return EventAllLevelsComplete, true
	default:
		return 0, false
	}
}
