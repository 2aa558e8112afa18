package doctext

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainFilesPassThrough(t *testing.T) {
	e := NewPDFExtractor(logrus.New())

	text, err := e.ExtractText(context.Background(), []byte("  John Doe\nGo developer\n"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nGo developer", text)

	text, err = e.ExtractText(context.Background(), []byte("# Resume"), "resume.MD")
	require.NoError(t, err)
	assert.Equal(t, "# Resume", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	e := NewPDFExtractor(logrus.New())

	_, err := e.ExtractText(context.Background(), []byte("data"), "resume.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document format")
}

func TestExtractTextCorruptPDF(t *testing.T) {
	e := NewPDFExtractor(logrus.New())

	_, err := e.ExtractText(context.Background(), []byte("not a pdf"), "resume.pdf")
	require.Error(t, err)
}
