package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/utils"
)

type ResultRepository interface {
	Insert(ctx context.Context, res *models.InterviewResult) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.InterviewResult, error)
}

type resultRepo struct {
	db *gorm.DB
}

func NewResultRepo(db *gorm.DB) ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) Insert(ctx context.Context, res *models.InterviewResult) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resultRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.InterviewResult, error) {
	var row models.InterviewResult
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}
