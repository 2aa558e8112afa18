package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hireloop/interviewd/internal/llmjson"
	"github.com/hireloop/interviewd/internal/providers/llm"
	"github.com/hireloop/interviewd/internal/transcript"
)

// Recommendation tiers as the review pipeline consumes them.
const (
	RecommendStrongHire = "strong_hire"
	RecommendHire       = "hire"
	RecommendMaybe      = "maybe"
)

type SkillScores struct {
	Communication         int `json:"communication"`
	ProblemSolving        int `json:"problem_solving"`
	RoleSpecificKnowledge int `json:"role_specific_knowledge"`
	PracticalExperience   int `json:"practical_experience"`
	Clarity               int `json:"clarity"`
	Confidence            int `json:"confidence"`
}

// Scorecard is the final aggregated assessment for a completed session.
// Created exactly once, at the turn that ends the interview.
type Scorecard struct {
	Strengths             []string    `json:"strengths" bson:"strengths"`
	ImprovementAreas      []string    `json:"improvement_areas" bson:"improvement_areas"`
	SkillScores           SkillScores `json:"skill_wise_scores" bson:"skill_wise_scores"`
	OverallScore          int         `json:"overall_score" bson:"overall_score"`
	TimeTakenMinutes      float64     `json:"time_taken_minutes" bson:"time_taken_minutes"`
	ResumeMatchPercentage int         `json:"resume_match_percentage" bson:"resume_match_percentage"`
	FinalRecommendation   string      `json:"final_recommendation" bson:"final_recommendation"`
	ExpectedResponseTime  string      `json:"expected_response_time" bson:"expected_response_time"`
}

// scorecardDoc is the parse target: every field optional so partial model
// output can be told apart from explicit values.
type scorecardDoc struct {
	Strengths             *[]string `json:"strengths"`
	ImprovementAreas      *[]string `json:"improvement_areas"`
	SkillScores           *struct {
		Communication         *float64 `json:"communication"`
		ProblemSolving        *float64 `json:"problem_solving"`
		RoleSpecificKnowledge *float64 `json:"role_specific_knowledge"`
		PracticalExperience   *float64 `json:"practical_experience"`
		Clarity               *float64 `json:"clarity"`
		Confidence            *float64 `json:"confidence"`
	} `json:"skill_wise_scores"`
	OverallScore          *float64 `json:"overall_score"`
	ResumeMatchPercentage *float64 `json:"resume_match_percentage"`
	FinalRecommendation   *string  `json:"final_recommendation"`
	ExpectedResponseTime  *string  `json:"expected_response_time"`
}

var defaultStrengths = []string{"Participated in the interview"}
var defaultImprovements = []string{"Provide more detailed responses"}

// Summarize produces the final scorecard from the full reconstructed history.
// The model writes the narrative; elapsed time is always recomputed locally
// from wall-clock timestamps and overrides whatever the model claimed, since
// generated text has no reliable notion of real time.
func Summarize(ctx context.Context, p llm.Provider, resumeSummary, jobDescription string, history []transcript.Turn, startedAt, now time.Time) (Scorecard, error) {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return Scorecard{}, err
	}

	raw, err := p.Complete(ctx, llm.Request{
		System: summarySystem,
		Prompt: fmt.Sprintf(summaryPrompt,
			resumeSummary, jobDescription, historyJSON,
			startedAt.UnixMilli(), now.UnixMilli()),
	})
	if err != nil {
		return Scorecard{}, err
	}

	var doc scorecardDoc
	llmjson.Unmarshal(raw, &doc)

	card := Scorecard{
		Strengths:             listOr(doc.Strengths, defaultStrengths),
		ImprovementAreas:      listOr(doc.ImprovementAreas, defaultImprovements),
		OverallScore:          score10(doc.OverallScore),
		ResumeMatchPercentage: percent(doc.ResumeMatchPercentage),
		FinalRecommendation:   stringOr(doc.FinalRecommendation, "Needs Improvement"),
		ExpectedResponseTime:  stringOr(doc.ExpectedResponseTime, "Within 3-5 business days"),
	}
	if doc.SkillScores != nil {
		card.SkillScores = SkillScores{
			Communication:         score10(doc.SkillScores.Communication),
			ProblemSolving:        score10(doc.SkillScores.ProblemSolving),
			RoleSpecificKnowledge: score10(doc.SkillScores.RoleSpecificKnowledge),
			PracticalExperience:   score10(doc.SkillScores.PracticalExperience),
			Clarity:               score10(doc.SkillScores.Clarity),
			Confidence:            score10(doc.SkillScores.Confidence),
		}
	} else {
		card.SkillScores = SkillScores{
			Communication: neutralScore, ProblemSolving: neutralScore,
			RoleSpecificKnowledge: neutralScore, PracticalExperience: neutralScore,
			Clarity: neutralScore, Confidence: neutralScore,
		}
	}

	card.TimeTakenMinutes = ElapsedMinutes(startedAt, now)
	return card, nil
}

// ElapsedMinutes is wall-clock elapsed time in minutes, one decimal place.
func ElapsedMinutes(startedAt, now time.Time) float64 {
	min := now.Sub(startedAt).Minutes()
	if min < 0 {
		min = 0
	}
	return math.Round(min*10) / 10
}

// NormalizeRecommendation maps free-text recommendations onto the closed tier
// set by keyword. Unrecognized text lands on the lowest tier, never an error.
func NormalizeRecommendation(rec string) string {
	r := strings.ToLower(strings.TrimSpace(rec))
	switch {
	case strings.Contains(r, "strong"):
		return RecommendStrongHire
	case strings.Contains(r, "moderate"), strings.Contains(r, "fit"):
		return RecommendHire
	default:
		return RecommendMaybe
	}
}

func score10(v *float64) int {
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

func percent(v *float64) int {
	if v == nil {
		return 50
	}
	n := int(math.Round(*v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func listOr(v *[]string, fallback []string) []string {
	if v == nil || len(*v) == 0 {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	return *v
}
