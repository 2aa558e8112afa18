package interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAnswerEmptyShortCircuits(t *testing.T) {
	for _, answer := range []string{"", "   ", "\n\t "} {
		p := &fakeProvider{}
		ev, err := EvaluateAnswer(context.Background(), p, "Tell me about yourself", answer)
		require.NoError(t, err)
		assert.Zero(t, p.calls, "empty answer must not reach the model")
		assert.Equal(t, Evaluation{ShortSummary: "No answer provided"}, ev)
	}
}

func TestEvaluateAnswerParsesFullResult(t *testing.T) {
	p := &fakeProvider{response: `{
		"relevance": 8, "depth": 7, "clarity": 9,
		"communication": 8, "problem_solving": 6, "practical_experience": 7,
		"short_summary": "Solid answer with concrete examples"
	}`}

	ev, err := EvaluateAnswer(context.Background(), p, "q", "I built a payment service in Go")
	require.NoError(t, err)
	assert.Equal(t, 8, ev.Relevance)
	assert.Equal(t, 7, ev.Depth)
	assert.Equal(t, 9, ev.Clarity)
	assert.Equal(t, "Solid answer with concrete examples", ev.ShortSummary)
	assert.Equal(t, 1, p.calls)
}

func TestEvaluateAnswerBackfillsMissingDimension(t *testing.T) {
	p := &fakeProvider{response: `{
		"relevance": 9, "clarity": 2,
		"communication": 0, "problem_solving": 4, "practical_experience": 6,
		"short_summary": "Mixed"
	}`}

	ev, err := EvaluateAnswer(context.Background(), p, "q", "some answer")
	require.NoError(t, err)
	assert.Equal(t, 5, ev.Depth, "missing dimension takes the neutral default")
	assert.Equal(t, 9, ev.Relevance)
	assert.Equal(t, 0, ev.Communication, "an explicit zero is preserved")
	assert.Equal(t, 2, ev.Clarity)
}

func TestEvaluateAnswerToleratesFencedOutput(t *testing.T) {
	p := &fakeProvider{response: "```json\n{\"relevance\": 6, \"short_summary\": \"ok\"}\n```"}

	ev, err := EvaluateAnswer(context.Background(), p, "q", "answer")
	require.NoError(t, err)
	assert.Equal(t, 6, ev.Relevance)
	assert.Equal(t, 5, ev.Depth)
	assert.Equal(t, "ok", ev.ShortSummary)
}

func TestEvaluateAnswerMalformedOutputYieldsDefaults(t *testing.T) {
	p := &fakeProvider{response: "I cannot evaluate this answer."}

	ev, err := EvaluateAnswer(context.Background(), p, "q", "answer")
	require.NoError(t, err)
	assert.Equal(t, Evaluation{
		Relevance: 5, Depth: 5, Clarity: 5,
		Communication: 5, ProblemSolving: 5, PracticalExperience: 5,
		ShortSummary: "Unable to evaluate",
	}, ev)
}

func TestEvaluateAnswerProviderFailureSurfaces(t *testing.T) {
	p := &fakeProvider{err: errProviderDown}
	_, err := EvaluateAnswer(context.Background(), p, "q", "answer")
	assert.ErrorIs(t, err, errProviderDown)
}

func TestEvaluationDerivedScores(t *testing.T) {
	ev := Evaluation{Relevance: 8, Depth: 6, Clarity: 10, Communication: 8, ProblemSolving: 4, PracticalExperience: 6}

	assert.Equal(t, 70, ev.AverageScore())
	assert.Equal(t, 60, ev.ContentScore())
	assert.Equal(t, 90, ev.DeliveryScore())
}
