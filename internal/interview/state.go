package interview

// Session status values as persisted. The only legal transition is
// StatusStarted -> StatusCompleted.
const (
	StatusStarted   = "started"
	StatusCompleted = "completed"
)

// State is the explicit per-session conversation state.
type State string

const (
	StateAwaitingFirstAnswer State = "awaiting_first_answer"
	StateAwaitingNextAnswer  State = "awaiting_next_answer"
	StateStopping            State = "stopping"
	StateCompleted           State = "completed"
)

// StateOf derives the session state from persisted status, recorded answer
// count, and whether a stop has been decided this turn. Completed is terminal:
// callers must reject further answers once it is reached.
func StateOf(status string, answerCount int, stopping bool) State {
	if status == StatusCompleted {
		return StateCompleted
	}
	if stopping {
		return StateStopping
	}
	if answerCount < 1 {
		return StateAwaitingFirstAnswer
	}
	return StateAwaitingNextAnswer
}
