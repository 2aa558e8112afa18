package transcript

import "strings"

// TurnKind distinguishes reconstructed interviewer questions from candidate
// answers.
type TurnKind string

const (
	TurnQuestion TurnKind = "question"
	TurnAnswer   TurnKind = "answer"
)

// Turn is one reconstructed conversation unit. Turns have no identity beyond
// their position in the history.
type Turn struct {
	Kind    TurnKind `json:"type"`
	Content string   `json:"content"`
}

const (
	resumePrefix = "Resume parsed for:"
	jobPrefix    = "Job description:"

	// Fallbacks when the session was started without context lines.
	defaultResumeContext  = "Candidate's resume provided."
	defaultJobDescription = "Software Engineer role requiring strong technical skills and problem solving."
)

// History rebuilds the ordered question/answer sequence from a transcript.
// An empty or missing transcript yields an empty history; that is the start
// of an interview, not an error.
func History(t string) []Turn {
	var out []Turn
	for _, l := range Decode(t) {
		switch l.Tag {
		case TagAI:
			out = append(out, Turn{Kind: TurnQuestion, Content: l.Content})
		case TagCandidate:
			out = append(out, Turn{Kind: TurnAnswer, Content: l.Content})
		}
	}
	return out
}

// AnswerCount reports how many candidate answers the transcript holds.
func AnswerCount(t string) int {
	n := 0
	for _, l := range Decode(t) {
		if l.Tag == TagCandidate {
			n++
		}
	}
	return n
}

// LastQuestion returns the most recent [AI] line: the question currently
// awaiting an answer. ok is false when no question was asked yet.
func LastQuestion(t string) (text string, ok bool) {
	lines := Decode(t)
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Tag == TagAI {
			return lines[i].Content, true
		}
	}
	return "", false
}

// LastQuestionID returns the most recent [QID] marker: the persisted question
// row the upcoming answer must be attributed to.
func LastQuestionID(t string) (id string, ok bool) {
	lines := Decode(t)
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Tag == TagQuestion {
			return strings.TrimSpace(lines[i].Content), true
		}
	}
	return "", false
}

// ResumeContext extracts the candidate summary recorded at session start.
func ResumeContext(t string) string {
	for _, l := range Decode(t) {
		if l.Tag == TagSystem && strings.HasPrefix(l.Content, resumePrefix) {
			name := strings.TrimSpace(strings.TrimPrefix(l.Content, resumePrefix))
			if name != "" {
				return "Candidate: " + name
			}
		}
	}
	return defaultResumeContext
}

// JobDescription extracts the job description recorded at session start.
func JobDescription(t string) string {
	for _, l := range Decode(t) {
		if l.Tag == TagSystem && strings.HasPrefix(l.Content, jobPrefix) {
			if jd := strings.TrimSpace(strings.TrimPrefix(l.Content, jobPrefix)); jd != "" {
				return jd
			}
		}
	}
	return defaultJobDescription
}

// SystemResumeLine formats the resume context line written at session start.
func SystemResumeLine(candidateName string) string {
	return resumePrefix + " " + candidateName
}

// SystemJobLine formats the job description line written at session start.
func SystemJobLine(jobDescription string) string {
	return jobPrefix + " " + jobDescription
}
