package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/interviewd/internal/services"
	"github.com/hireloop/interviewd/internal/utils"
)

// maxResumeBytes bounds resume uploads; screening resumes are small documents.
const maxResumeBytes = 10 << 20

type ResumeHandler struct {
	svc services.ResumeService
	log *logrus.Logger
}

func NewResumeHandler(svc services.ResumeService, log *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{svc: svc, log: log}
}

type ParseResumeResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

func (h *ResumeHandler) Parse(c *gin.Context) {
	const op = "ResumeHandler.Parse"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file is required", err))
		return
	}
	if fh.Size > maxResumeBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	text, err := h.svc.Extract(c.Request.Context(), data, fh.Filename)
	if err != nil {
		writeError(c, err)
		return
	}

	// best-effort archival; extraction output is what the caller needs
	sessionID := c.PostForm("session_id")
	if _, err := h.svc.Archive(c.Request.Context(), sessionID, fh.Filename, fh.Header.Get("Content-Type"), data); err != nil {
		h.log.WithError(err).Warn("resume archival failed")
	}

	c.JSON(http.StatusOK, ParseResumeResponse{Success: true, Text: text, Filename: fh.Filename})
}
