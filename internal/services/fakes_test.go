package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hireloop/interviewd/internal/interview"
	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/providers/llm"
	"github.com/hireloop/interviewd/internal/utils"
)

// scriptedLLM answers each of the three model roles with a canned response,
// keyed off the system prompt.
type scriptedLLM struct {
	mu        sync.Mutex
	driver    string
	evaluator string
	summary   string
	parser    string
	calls     []llm.Request
}

func (f *scriptedLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	switch {
	case strings.Contains(req.System, "AI Interviewer"):
		return f.driver, nil
	case strings.Contains(req.System, "interview evaluator"):
		return f.evaluator, nil
	case strings.Contains(req.System, "recruiter"):
		return f.summary, nil
	case strings.Contains(req.System, "resume parsing"):
		return f.parser, nil
	}
	return "{}", nil
}

func (f *scriptedLLM) Close() error { return nil }

func defaultScriptedLLM() *scriptedLLM {
	return &scriptedLLM{
		driver:    `{"question":"Thanks. What databases have you worked with?","feedback":"clear","stop_interview":false}`,
		evaluator: `{"relevance":7,"depth":6,"clarity":8,"communication":7,"problem_solving":6,"practical_experience":7,"short_summary":"decent"}`,
		summary:   `{"strengths":["clear communicator"],"improvement_areas":["go deeper"],"skill_wise_scores":{"communication":8,"problem_solving":6,"role_specific_knowledge":7,"practical_experience":6,"clarity":8,"confidence":7},"overall_score":7,"time_taken_minutes":42,"resume_match_percentage":75,"final_recommendation":"Moderate Fit"}`,
		parser:    `{"name":"Jane Doe","skills":["Go","Postgres"]}`,
	}
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, s *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.SessionID] = &cp
	return nil
}

func (r *memSessionRepo) GetBySessionID(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) UpdateTranscript(_ context.Context, id, transcript string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != interview.StatusStarted {
		return utils.ErrNotFound
	}
	s.Transcript = transcript
	return nil
}

func (r *memSessionRepo) Complete(_ context.Context, id string, card *interview.Scorecard, completedAt time.Time, durationSeconds int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Status != interview.StatusStarted {
		return utils.ErrNotFound
	}
	s.Status = interview.StatusCompleted
	s.Scorecard = card
	s.CompletedAt = &completedAt
	s.DurationSeconds = durationSeconds
	return nil
}

type memAnswerRepo struct {
	mu   sync.Mutex
	rows []models.InterviewAnswer
}

func (r *memAnswerRepo) Insert(_ context.Context, a *models.InterviewAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *a)
	return nil
}

func (r *memAnswerRepo) ListBySession(_ context.Context, sessionID string) ([]models.InterviewAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewAnswer
	for _, a := range r.rows {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAnswerRepo) CountBySession(_ context.Context, sessionID string) (int64, error) {
	rows, _ := r.ListBySession(context.Background(), sessionID)
	return int64(len(rows)), nil
}

type memQuestionRepo struct {
	mu   sync.Mutex
	rows []models.InterviewQuestion
}

func (r *memQuestionRepo) Insert(_ context.Context, q *models.InterviewQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *q)
	return nil
}

func (r *memQuestionRepo) GetByID(_ context.Context, id string) (*models.InterviewQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			cp := r.rows[i]
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memQuestionRepo) ListByTemplate(_ context.Context, templateID string) ([]models.InterviewQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewQuestion
	for _, q := range r.rows {
		if q.TemplateID != nil && *q.TemplateID == templateID {
			out = append(out, q)
		}
	}
	return out, nil
}

type memResultRepo struct {
	mu   sync.Mutex
	rows []models.InterviewResult
}

func (r *memResultRepo) Insert(_ context.Context, res *models.InterviewResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *res)
	return nil
}

func (r *memResultRepo) GetBySessionID(_ context.Context, sessionID string) (*models.InterviewResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].SessionID == sessionID {
			cp := r.rows[i]
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}
