package models

import (
	"time"

	"gorm.io/datatypes"
)

// InterviewAnswer is one candidate answer with its immutable evaluation. The
// question text is snapshotted so the row stays meaningful if the question
// bank changes.
type InterviewAnswer struct {
	ID         string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionID  string  `gorm:"column:session_id;type:uuid;index" json:"session_id"`
	QuestionID *string `gorm:"column:question_id;type:uuid" json:"question_id,omitempty"`

	QuestionText string `gorm:"column:question_text_snapshot;type:text" json:"question_text"`
	AnswerText   string `gorm:"column:answer_text;type:text" json:"answer_text"`

	Evaluation datatypes.JSON `gorm:"column:evaluation;type:jsonb" json:"evaluation"`

	Score         int    `gorm:"column:score;type:integer" json:"score"`                   // 0-100
	ContentScore  int    `gorm:"column:content_score;type:integer" json:"content_score"`   // 0-100
	DeliveryScore int    `gorm:"column:delivery_score;type:integer" json:"delivery_score"` // 0-100
	AIFeedback    string `gorm:"column:ai_feedback;type:text" json:"ai_feedback"`

	AnsweredAt time.Time `gorm:"column:answered_at;type:timestamptz;index" json:"answered_at"`
}

func (InterviewAnswer) TableName() string { return "interview_answers" }
