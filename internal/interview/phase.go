// Package interview holds the conversation core: phase and stop policy, the
// session state machine, per-answer evaluation, the interviewer driver, and
// final scorecard aggregation. Everything here derives its inputs from the
// reconstructed transcript; nothing keeps session state of its own.
package interview

import "time"

// Phase is the coarse stage of the interview, driven purely by how many
// answers have been recorded.
type Phase string

const (
	PhaseIntroduction Phase = "introduction"
	PhaseTechnical    Phase = "technical"
)

// DefaultMaxDuration is the wall-clock ceiling for a screening interview.
const DefaultMaxDuration = 5 * time.Minute

// PhaseFor returns the phase for a session with answerCount recorded answers.
func PhaseFor(answerCount int) Phase {
	if answerCount < 1 {
		return PhaseIntroduction
	}
	return PhaseTechnical
}

// ShouldForceStop reports whether elapsed wall-clock time has exceeded the
// ceiling. The timer is the backstop against runaway conversations and is
// independent of conversational content; it is ORed with the driver's own
// stop signal.
func ShouldForceStop(startedAt, now time.Time, max time.Duration) bool {
	if max <= 0 {
		max = DefaultMaxDuration
	}
	return now.Sub(startedAt) > max
}
