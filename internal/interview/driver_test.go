package interview

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/interviewd/internal/providers/llm"
	"github.com/hireloop/interviewd/internal/transcript"
)

func TestNextTurnParsesDirective(t *testing.T) {
	p := &fakeProvider{response: `{"question":"Thanks. What databases have you worked with?","feedback":"clear intro","stop_interview":false}`}

	d, err := NextTurn(context.Background(), p, DriverInput{
		ResumeSummary:  "Candidate: Jane",
		JobDescription: "Backend engineer",
		Phase:          PhaseTechnical,
		History: []transcript.Turn{
			{Kind: transcript.TurnQuestion, Content: "Tell me about yourself"},
			{Kind: transcript.TurnAnswer, Content: "I am an engineer"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Thanks. What databases have you worked with?", d.Question)
	assert.Equal(t, "clear intro", d.Feedback)
	assert.False(t, d.StopInterview)
}

func TestNextTurnWindowsHistory(t *testing.T) {
	var history []transcript.Turn
	for i := 0; i < 14; i++ {
		kind := transcript.TurnQuestion
		if i%2 == 1 {
			kind = transcript.TurnAnswer
		}
		history = append(history, transcript.Turn{Kind: kind, Content: fmt.Sprintf("turn-%d", i)})
	}

	p := &fakeProvider{response: `{"question":"next","feedback":"","stop_interview":false}`}
	_, err := NextTurn(context.Background(), p, DriverInput{History: history})
	require.NoError(t, err)

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	assert.Len(t, req.History, historyWindow)
	assert.Equal(t, "turn-4", req.History[0].Content, "oldest turns are dropped")
	assert.NotContains(t, req.Prompt, "turn-3")
	assert.Contains(t, req.Prompt, "turn-13")
}

func TestNextTurnHistoryRoles(t *testing.T) {
	p := &fakeProvider{response: `{"question":"next"}`}
	_, err := NextTurn(context.Background(), p, DriverInput{
		History: []transcript.Turn{
			{Kind: transcript.TurnQuestion, Content: "q1"},
			{Kind: transcript.TurnAnswer, Content: "a1"},
		},
	})
	require.NoError(t, err)

	req := p.requests[0]
	require.Len(t, req.History, 2)
	assert.Equal(t, llm.RoleAssistant, req.History[0].Role)
	assert.Equal(t, llm.RoleUser, req.History[1].Role)
}

func TestNextTurnForceStopAlwaysStops(t *testing.T) {
	p := &fakeProvider{response: `{"question":"Thank you, that concludes our interview.","stop_interview":false}`}

	d, err := NextTurn(context.Background(), p, DriverInput{ForceStop: true})
	require.NoError(t, err)
	assert.True(t, d.StopInterview, "force stop overrides the model's own flag")
	assert.Equal(t, "Thank you, that concludes our interview.", d.Question)
	assert.True(t, strings.Contains(p.requests[0].Prompt, "true"))
}

func TestNextTurnForceStopGracefulOnGarbage(t *testing.T) {
	p := &fakeProvider{response: "not json"}

	d, err := NextTurn(context.Background(), p, DriverInput{ForceStop: true})
	require.NoError(t, err)
	assert.True(t, d.StopInterview)
	assert.Equal(t, closingUtterance, d.Question)
}

func TestNextTurnProviderFailureSurfaces(t *testing.T) {
	p := &fakeProvider{err: errProviderDown}
	_, err := NextTurn(context.Background(), p, DriverInput{})
	assert.ErrorIs(t, err, errProviderDown)
}
