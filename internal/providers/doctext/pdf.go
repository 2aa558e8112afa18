package doctext

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// PDFExtractor handles PDF resumes via unipdf and passes plain-text files
// through untouched.
type PDFExtractor struct {
	log *logrus.Logger
}

func NewPDFExtractor(log *logrus.Logger) *PDFExtractor {
	return &PDFExtractor{log: log}
}

func (e *PDFExtractor) ExtractText(_ context.Context, data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return e.extractPDF(data)
	default:
		return "", fmt.Errorf("unsupported document format: %s", filepath.Ext(filename))
	}
}

func (e *PDFExtractor) extractPDF(data []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			e.log.WithError(err).WithField("page", i).Warn("skipping unreadable page")
			continue
		}

		ex, err := extractor.New(page)
		if err != nil {
			e.log.WithError(err).WithField("page", i).Warn("skipping page: extractor init failed")
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			e.log.WithError(err).WithField("page", i).Warn("skipping page: text extraction failed")
			continue
		}

		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text in PDF")
	}
	return text, nil
}
