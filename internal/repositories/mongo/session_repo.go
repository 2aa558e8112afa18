package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hireloop/interviewd/internal/interview"
	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/utils"
)

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error)
	// UpdateTranscript replaces the stored transcript blob. Only sessions that
	// are still running match; a completed session's transcript is frozen.
	UpdateTranscript(ctx context.Context, sessionID, transcript string) error
	// Complete performs the one terminal write: status, scorecard, timing.
	Complete(ctx context.Context, sessionID string, card *interview.Scorecard, completedAt time.Time, durationSeconds int64) error
}

type sessionRepo struct {
	col *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepository {
	return &sessionRepo{col: db.Collection("interview_sessions")}
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *sessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error) {
	var s models.Session
	err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *sessionRepo) UpdateTranscript(ctx context.Context, sessionID, transcript string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "status": interview.StatusStarted},
		bson.M{"$set": bson.M{"transcript": transcript}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, sessionID string, card *interview.Scorecard, completedAt time.Time, durationSeconds int64) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "status": interview.StatusStarted},
		bson.M{"$set": bson.M{
			"status":           interview.StatusCompleted,
			"scorecard":        card,
			"completed_at":     completedAt.UTC(),
			"duration_seconds": durationSeconds,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
