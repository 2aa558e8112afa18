package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/interviewd/internal/services"
	"github.com/hireloop/interviewd/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type StartInterviewRequest struct {
	ResumeText      string          `json:"resumeText"`
	ApplicationData ApplicationData `json:"applicationData"`
}

type ApplicationData struct {
	CandidateID    string `json:"candidateId"`
	TemplateID     string `json:"templateId"`
	ApplicationID  string `json:"applicationId"`
	CompanyID      string `json:"companyId"`
	JobDescription string `json:"jobDescription"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	var req StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Start", "invalid request body", err))
		return
	}

	out, err := h.svc.Start(c.Request.Context(), services.StartInput{
		ResumeText:     req.ResumeText,
		JobDescription: req.ApplicationData.JobDescription,
		CandidateID:    req.ApplicationData.CandidateID,
		TemplateID:     req.ApplicationData.TemplateID,
		ApplicationID:  req.ApplicationData.ApplicationID,
		CompanyID:      req.ApplicationData.CompanyID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type AnswerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Answer    string `json:"answer"`
}

func (h *InterviewHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Answer", "invalid request body", err))
		return
	}

	out, err := h.svc.SubmitAnswer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

type StopRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (h *InterviewHandler) Stop(c *gin.Context) {
	var req StopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Stop", "invalid request body", err))
		return
	}

	out, err := h.svc.ForceStop(c.Request.Context(), req.SessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	sess, err := h.svc.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess)
}
