package interview

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/hireloop/interviewd/internal/llmjson"
	"github.com/hireloop/interviewd/internal/providers/llm"
)

// Evaluation is the per-answer rubric: six dimensions in [0,10] plus a short
// summary. Immutable once stored on the answer row.
type Evaluation struct {
	Relevance           int    `json:"relevance"`
	Depth               int    `json:"depth"`
	Clarity             int    `json:"clarity"`
	Communication       int    `json:"communication"`
	ProblemSolving      int    `json:"problem_solving"`
	PracticalExperience int    `json:"practical_experience"`
	ShortSummary        string `json:"short_summary"`
}

// Dimensions returns the six scores in stable order.
func (e Evaluation) Dimensions() []int {
	return []int{e.Relevance, e.Depth, e.Clarity, e.Communication, e.ProblemSolving, e.PracticalExperience}
}

// AverageScore is the mean of all dimensions scaled to [0,100].
func (e Evaluation) AverageScore() int {
	return scale100(e.Dimensions())
}

// ContentScore covers what the candidate said: relevance, depth, problem
// solving. Scaled to [0,100].
func (e Evaluation) ContentScore() int {
	return scale100([]int{e.Relevance, e.Depth, e.ProblemSolving})
}

// DeliveryScore covers how it was said: clarity and communication. Scaled to
// [0,100].
func (e Evaluation) DeliveryScore() int {
	return scale100([]int{e.Clarity, e.Communication})
}

func scale100(dims []int) int {
	if len(dims) == 0 {
		return 50
	}
	sum := 0
	for _, d := range dims {
		sum += d
	}
	return int(float64(sum) / float64(len(dims)) * 10)
}

// zeroEvaluation is the fixed result for empty answers. Zero-effort answers
// never receive a non-zero score.
func zeroEvaluation() Evaluation {
	return Evaluation{ShortSummary: "No answer provided"}
}

// parsed mirrors Evaluation with optional fields so a dimension the model
// omitted can be told apart from an explicit zero.
type evaluationDoc struct {
	Relevance           *float64 `json:"relevance"`
	Depth               *float64 `json:"depth"`
	Clarity             *float64 `json:"clarity"`
	Communication       *float64 `json:"communication"`
	ProblemSolving      *float64 `json:"problem_solving"`
	PracticalExperience *float64 `json:"practical_experience"`
	ShortSummary        *string  `json:"short_summary"`
}

const neutralScore = 5

// EvaluateAnswer scores one candidate answer against the question it answered.
// Whitespace-only answers short-circuit to an all-zero evaluation without
// calling the model. A model call failure is returned as-is; malformed model
// output is repaired with neutral defaults, never surfaced as an error.
func EvaluateAnswer(ctx context.Context, p llm.Provider, question, answer string) (Evaluation, error) {
	if strings.TrimSpace(answer) == "" {
		return zeroEvaluation(), nil
	}

	raw, err := p.Complete(ctx, llm.Request{
		System: evaluatorSystem,
		Prompt: fmt.Sprintf(evaluatorPrompt, question, answer),
	})
	if err != nil {
		return Evaluation{}, err
	}

	var doc evaluationDoc
	llmjson.Unmarshal(raw, &doc)

	return Evaluation{
		Relevance:           dimension(doc.Relevance),
		Depth:               dimension(doc.Depth),
		Clarity:             dimension(doc.Clarity),
		Communication:       dimension(doc.Communication),
		ProblemSolving:      dimension(doc.ProblemSolving),
		PracticalExperience: dimension(doc.PracticalExperience),
		ShortSummary:        stringOr(doc.ShortSummary, "Unable to evaluate"),
	}, nil
}

// dimension backfills a missing score with the neutral default and clamps
// present scores to [0,10].
func dimension(v *float64) int {
	if v == nil {
		return neutralScore
	}
	n := int(math.Round(*v))
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

func stringOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}
