package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/utils"
)

type QuestionRepository interface {
	Insert(ctx context.Context, q *models.InterviewQuestion) error
	GetByID(ctx context.Context, id string) (*models.InterviewQuestion, error)
	ListByTemplate(ctx context.Context, templateID string) ([]models.InterviewQuestion, error)
}

type questionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) QuestionRepository {
	return &questionRepo{db: db}
}

func (r *questionRepo) Insert(ctx context.Context, q *models.InterviewQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*models.InterviewQuestion, error) {
	var q models.InterviewQuestion
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &q, err
}

func (r *questionRepo) ListByTemplate(ctx context.Context, templateID string) ([]models.InterviewQuestion, error) {
	var rows []models.InterviewQuestion
	err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}
