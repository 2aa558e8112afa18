package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hireloop/interviewd/internal/interview"
)

// Session is one interview run. The transcript field is the sole source of
// truth for conversation state: it is append-only, and the scorecard is
// written exactly once when the session completes.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"` // uuid v4

	CandidateID   string `bson:"candidate_id,omitempty" json:"candidate_id,omitempty"`
	TemplateID    string `bson:"template_id,omitempty" json:"template_id,omitempty"`
	ApplicationID string `bson:"application_id,omitempty" json:"application_id,omitempty"`
	CompanyID     string `bson:"company_id,omitempty" json:"company_id,omitempty"`

	Status          string `bson:"status" json:"status"` // started|completed
	InvitationToken string `bson:"invitation_token,omitempty" json:"invitation_token,omitempty"`

	Transcript string               `bson:"transcript" json:"transcript"`
	Scorecard  *interview.Scorecard `bson:"scorecard,omitempty" json:"scorecard,omitempty"`

	StartedAt       time.Time  `bson:"started_at" json:"started_at"`
	CompletedAt     *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	DurationSeconds int64      `bson:"duration_seconds" json:"duration_seconds"`
}
