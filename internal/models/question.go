package models

import "time"

// InterviewQuestion is a persisted question row; each [AI] transcript line is
// preceded by a [QID] marker pointing at one of these.
type InterviewQuestion struct {
	ID         string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	TemplateID *string `gorm:"column:template_id;type:uuid;index" json:"template_id,omitempty"`

	Text       string `gorm:"column:text;type:text" json:"text"`
	Category   string `gorm:"column:category;type:text" json:"category"`     // technical|behavioral|...
	Difficulty string `gorm:"column:difficulty;type:text" json:"difficulty"` // easy|medium|hard
	SortOrder  int    `gorm:"column:sort_order;type:integer" json:"sort_order"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (InterviewQuestion) TableName() string { return "interview_questions" }
