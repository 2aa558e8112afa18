package services

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/providers/doctext"
	pgrepo "github.com/hireloop/interviewd/internal/repositories/postgres"
	"github.com/hireloop/interviewd/internal/storage"
	"github.com/hireloop/interviewd/internal/utils"
)

type ResumeService interface {
	// Extract pulls plain text out of an uploaded resume document.
	Extract(ctx context.Context, data []byte, filename string) (string, error)
	// Archive stores the original file in object storage and records its
	// metadata. No-op when no uploader is configured.
	Archive(ctx context.Context, sessionID, filename, mimeType string, data []byte) (*models.ResumeFile, error)
}

type resumeService struct {
	extractor doctext.Extractor
	uploader  storage.Uploader
	files     pgrepo.ResumeFileRepository
	log       *logrus.Logger
}

func NewResumeService(extractor doctext.Extractor, uploader storage.Uploader, files pgrepo.ResumeFileRepository, log *logrus.Logger) ResumeService {
	return &resumeService{extractor: extractor, uploader: uploader, files: files, log: log}
}

func (s *resumeService) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	const op = "ResumeService.Extract"

	if len(data) == 0 {
		return "", utils.E(utils.CodeInvalidArgument, op, "file is empty", nil)
	}

	text, err := s.extractor.ExtractText(ctx, data, filename)
	if err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "could not extract text from document", err)
	}
	return text, nil
}

func (s *resumeService) Archive(ctx context.Context, sessionID, filename, mimeType string, data []byte) (*models.ResumeFile, error) {
	const op = "ResumeService.Archive"

	if s.uploader == nil {
		return nil, nil
	}

	objectName := "resumes/" + uuid.NewString() + "/" + filename
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, bytes.NewReader(data))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	row := &models.ResumeFile{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		FileName:  filename,
		FilePath:  storedPath,
		FileSize:  len(data),
		MimeType:  mimeType,
		UploadAt:  time.Now().UTC(),
	}
	if err := s.files.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume metadata", err)
	}
	return row, nil
}
