package interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/interviewd/internal/transcript"
)

var scorecardHistory = []transcript.Turn{
	{Kind: transcript.TurnQuestion, Content: "Tell me about yourself"},
	{Kind: transcript.TurnAnswer, Content: "I am an engineer"},
}

func TestSummarizeOverridesModelElapsedTime(t *testing.T) {
	p := &fakeProvider{response: `{
		"strengths": ["communicates well"],
		"improvement_areas": ["needs more depth"],
		"skill_wise_scores": {"communication": 8, "problem_solving": 7, "role_specific_knowledge": 6, "practical_experience": 7, "clarity": 8, "confidence": 7},
		"overall_score": 7,
		"time_taken_minutes": 9999,
		"resume_match_percentage": 80,
		"final_recommendation": "Moderate Fit"
	}`}

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start.Add(4*time.Minute + 30*time.Second)

	card, err := Summarize(context.Background(), p, "Candidate: Jane", "Backend engineer", scorecardHistory, start, now)
	require.NoError(t, err)
	assert.Equal(t, 4.5, card.TimeTakenMinutes, "model's elapsed-time claim is never trusted")
	assert.Equal(t, 7, card.OverallScore)
	assert.Equal(t, 80, card.ResumeMatchPercentage)
	assert.Equal(t, []string{"communicates well"}, card.Strengths)
	assert.Equal(t, 8, card.SkillScores.Communication)
	assert.Equal(t, "Moderate Fit", card.FinalRecommendation)
}

func TestSummarizeMalformedOutputYieldsDefaults(t *testing.T) {
	p := &fakeProvider{response: "the candidate did fine I suppose"}

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start.Add(90 * time.Second)

	card, err := Summarize(context.Background(), p, "r", "jd", nil, start, now)
	require.NoError(t, err)
	assert.Equal(t, 5, card.OverallScore)
	assert.Equal(t, 50, card.ResumeMatchPercentage)
	assert.Equal(t, "Needs Improvement", card.FinalRecommendation)
	assert.Equal(t, SkillScores{5, 5, 5, 5, 5, 5}, card.SkillScores)
	assert.NotEmpty(t, card.Strengths)
	assert.NotEmpty(t, card.ImprovementAreas)
	assert.Equal(t, 1.5, card.TimeTakenMinutes)
}

func TestSummarizePartialSkillScores(t *testing.T) {
	p := &fakeProvider{response: `{"skill_wise_scores": {"communication": 9}, "overall_score": 8}`}

	start := time.Now().Add(-time.Minute)
	card, err := Summarize(context.Background(), p, "r", "jd", scorecardHistory, start, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 9, card.SkillScores.Communication)
	assert.Equal(t, 5, card.SkillScores.Confidence, "missing skills backfilled")
	assert.Equal(t, 8, card.OverallScore)
}

func TestSummarizeProviderFailureSurfaces(t *testing.T) {
	p := &fakeProvider{err: errProviderDown}
	_, err := Summarize(context.Background(), p, "r", "jd", nil, time.Now(), time.Now())
	assert.ErrorIs(t, err, errProviderDown)
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 5.0, ElapsedMinutes(start, start.Add(5*time.Minute)))
	assert.Equal(t, 0.5, ElapsedMinutes(start, start.Add(30*time.Second)))
	assert.Equal(t, 5.0, ElapsedMinutes(start, start.Add(301*time.Second)))
	assert.Equal(t, 0.0, ElapsedMinutes(start, start.Add(-time.Minute)), "clock skew clamps to zero")
}

func TestNormalizeRecommendation(t *testing.T) {
	assert.Equal(t, RecommendStrongHire, NormalizeRecommendation("Strong Fit"))
	assert.Equal(t, RecommendStrongHire, NormalizeRecommendation("a STRONG candidate overall"))
	assert.Equal(t, RecommendHire, NormalizeRecommendation("Moderate Fit"))
	assert.Equal(t, RecommendHire, NormalizeRecommendation("good fit"))
	assert.Equal(t, RecommendMaybe, NormalizeRecommendation("Needs Improvement"))
	assert.Equal(t, RecommendMaybe, NormalizeRecommendation("???"))
	assert.Equal(t, RecommendMaybe, NormalizeRecommendation(""))
}
