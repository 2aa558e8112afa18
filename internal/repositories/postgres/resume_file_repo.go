package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/hireloop/interviewd/internal/models"
)

type ResumeFileRepository interface {
	Insert(ctx context.Context, f *models.ResumeFile) error
}

type resumeFileRepo struct {
	db *gorm.DB
}

func NewResumeFileRepo(db *gorm.DB) ResumeFileRepository {
	return &resumeFileRepo{db: db}
}

func (r *resumeFileRepo) Insert(ctx context.Context, f *models.ResumeFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}
