package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/hireloop/interviewd/internal/models"
)

type AnswerRepository interface {
	Insert(ctx context.Context, a *models.InterviewAnswer) error
	ListBySession(ctx context.Context, sessionID string) ([]models.InterviewAnswer, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}

type answerRepo struct {
	db *gorm.DB
}

func NewAnswerRepo(db *gorm.DB) AnswerRepository {
	return &answerRepo{db: db}
}

func (r *answerRepo) Insert(ctx context.Context, a *models.InterviewAnswer) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *answerRepo) ListBySession(ctx context.Context, sessionID string) ([]models.InterviewAnswer, error) {
	var rows []models.InterviewAnswer
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("answered_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *answerRepo) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.InterviewAnswer{}).
		Where("session_id = ?", sessionID).
		Count(&n).Error
	return n, err
}
