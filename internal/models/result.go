package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// InterviewResult is the relational projection of a completed session's
// scorecard, denormalized into the columns the review dashboard queries.
type InterviewResult struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionID string `gorm:"column:session_id;type:uuid;uniqueIndex" json:"session_id"`

	OverallScore       int `gorm:"column:overall_score;type:integer" json:"overall_score"`
	TechnicalScore     int `gorm:"column:technical_score;type:integer" json:"technical_score"`
	CommunicationScore int `gorm:"column:communication_score;type:integer" json:"communication_score"`
	BehavioralScore    int `gorm:"column:behavioral_score;type:integer" json:"behavioral_score"`
	PresentationScore  int `gorm:"column:presentation_score;type:integer" json:"presentation_score"`

	Recommendation string `gorm:"column:ai_recommendation;type:text" json:"ai_recommendation"` // strong_hire|hire|maybe

	Strengths        pq.StringArray `gorm:"column:strengths;type:text[]" json:"strengths"`
	ImprovementAreas pq.StringArray `gorm:"column:improvement_areas;type:text[]" json:"improvement_areas"`
	SkillScores      datatypes.JSON `gorm:"column:skill_scores;type:jsonb" json:"skill_scores"`

	ResumeMatchPercentage int     `gorm:"column:resume_match_percentage;type:integer" json:"resume_match_percentage"`
	TimeTakenMinutes      float64 `gorm:"column:time_taken_minutes;type:numeric" json:"time_taken_minutes"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (InterviewResult) TableName() string { return "interview_results" }
