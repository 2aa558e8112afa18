package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireloop/interviewd/internal/llmjson"
	"github.com/hireloop/interviewd/internal/providers/llm"
	"github.com/hireloop/interviewd/internal/transcript"
)

// historyWindow bounds how many reconstructed turns the model sees per call.
// Persistence always keeps the full transcript; the window only trades
// long-range coherence for latency and cost.
const historyWindow = 10

// closingUtterance is used when the driver must wind down but the model gave
// nothing usable back.
const closingUtterance = "Thank you for your time today. That concludes the interview; the hiring team will review your responses and share the results with you."

// Directive is the driver's decision for one turn: the next interviewer
// utterance, an internal quality note on the last answer, and whether the
// interview should end.
type Directive struct {
	Question      string `json:"question"`
	Feedback      string `json:"feedback"`
	StopInterview bool   `json:"stop_interview"`
}

// DriverInput carries everything the driver may consult for one turn. History
// must be the full reconstructed history; windowing happens here.
type DriverInput struct {
	ResumeSummary  string
	JobDescription string
	Phase          Phase
	History        []transcript.Turn
	ForceStop      bool
}

// NextTurn acknowledges the candidate's latest answer and produces the next
// focused question, or a closing utterance when the interview is ending. With
// ForceStop set the model is told to wind down but a graceful close is
// guaranteed even if it returns garbage.
func NextTurn(ctx context.Context, p llm.Provider, in DriverInput) (Directive, error) {
	window := in.History
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}

	historyJSON, err := json.Marshal(window)
	if err != nil {
		return Directive{}, err
	}

	raw, err := p.Complete(ctx, llm.Request{
		System:  interviewerSystem,
		History: toMessages(window),
		Prompt: fmt.Sprintf(interviewerPrompt,
			in.ResumeSummary, in.JobDescription, in.Phase, historyJSON, in.ForceStop),
	})
	if err != nil {
		return Directive{}, err
	}

	var d Directive
	llmjson.Unmarshal(raw, &d)

	if in.ForceStop {
		d.StopInterview = true
		if d.Question == "" {
			d.Question = closingUtterance
		}
	}
	return d, nil
}

// toMessages maps reconstructed turns onto chat roles: the interviewer asked,
// the candidate answered.
func toMessages(turns []transcript.Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		if t.Content == "" {
			continue
		}
		role := llm.RoleUser
		if t.Kind == transcript.TurnQuestion {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}
	return msgs
}
