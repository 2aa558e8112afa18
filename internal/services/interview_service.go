package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/hireloop/interviewd/internal/cache"
	"github.com/hireloop/interviewd/internal/interview"
	"github.com/hireloop/interviewd/internal/locks"
	"github.com/hireloop/interviewd/internal/models"
	"github.com/hireloop/interviewd/internal/providers/llm"
	mongorepo "github.com/hireloop/interviewd/internal/repositories/mongo"
	pgrepo "github.com/hireloop/interviewd/internal/repositories/postgres"
	"github.com/hireloop/interviewd/internal/transcript"
	"github.com/hireloop/interviewd/internal/utils"
)

const scorecardTTL = 24 * time.Hour

type StartInput struct {
	ResumeText     string
	JobDescription string
	CandidateID    string
	TemplateID     string
	ApplicationID  string
	CompanyID      string
}

type StartOutput struct {
	SessionID string                  `json:"session_id"`
	Question  string                  `json:"question"`
	StartedAt time.Time               `json:"started_at"`
	Status    string                  `json:"status"`
	Profile   interview.ResumeProfile `json:"resume_parsed"`
}

// TurnOutput is the result of one submitted answer or a forced stop: either
// the next question (running) or the final scorecard (completed).
type TurnOutput struct {
	Status    string               `json:"status"` // running|completed
	Question  string               `json:"question,omitempty"`
	Feedback  string               `json:"feedback,omitempty"`
	Scorecard *interview.Scorecard `json:"scorecard,omitempty"`
}

type InterviewService interface {
	Start(ctx context.Context, in StartInput) (*StartOutput, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*TurnOutput, error)
	ForceStop(ctx context.Context, sessionID string) (*TurnOutput, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
}

// InterviewDeps wires the service. Cache is optional; everything else is
// required.
type InterviewDeps struct {
	Sessions  mongorepo.SessionRepository
	Answers   pgrepo.AnswerRepository
	Questions pgrepo.QuestionRepository
	Results   pgrepo.ResultRepository
	LLM       llm.Provider
	Locker    locks.Locker
	Cache     cache.Cache
	Logger    *logrus.Logger

	// MaxDuration is the wall-clock ceiling per interview; zero means the
	// default of five minutes.
	MaxDuration time.Duration

	// Clock is overridable in tests; nil means time.Now.
	Clock func() time.Time
}

type interviewService struct {
	d InterviewDeps
}

func NewInterviewService(d InterviewDeps) InterviewService {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.MaxDuration <= 0 {
		d.MaxDuration = interview.DefaultMaxDuration
	}
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	return &interviewService{d: d}
}

func (s *interviewService) Start(ctx context.Context, in StartInput) (*StartOutput, error) {
	const op = "InterviewService.Start"

	profile, err := interview.ParseResume(ctx, s.d.LLM, in.ResumeText)
	if err != nil {
		// A failed resume parse never blocks the interview.
		s.d.Logger.WithError(err).Warn("resume parsing failed, using default profile")
		profile = interview.DefaultResumeProfile()
	}

	now := s.d.Clock().UTC()
	greeting := interview.Greeting(profile.Name)

	question := &models.InterviewQuestion{
		ID:         uuid.NewString(),
		Text:       greeting,
		Category:   "introduction",
		Difficulty: "easy",
		CreatedAt:  now,
	}
	if in.TemplateID != "" {
		question.TemplateID = &in.TemplateID
	}
	if err := s.d.Questions.Insert(ctx, question); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist opening question", err)
	}

	blob := transcript.Append("", transcript.TagSystem, transcript.SystemResumeLine(profile.Name))
	blob = transcript.Append(blob, transcript.TagSystem, transcript.SystemJobLine(in.JobDescription))
	blob = transcript.Append(blob, transcript.TagQuestion, question.ID)
	blob = transcript.Append(blob, transcript.TagAI, greeting)

	sess := &models.Session{
		SessionID:       uuid.NewString(),
		CandidateID:     in.CandidateID,
		TemplateID:      in.TemplateID,
		ApplicationID:   in.ApplicationID,
		CompanyID:       in.CompanyID,
		Status:          interview.StatusStarted,
		InvitationToken: uuid.NewString(),
		Transcript:      blob,
		StartedAt:       now,
	}
	if err := s.d.Sessions.Create(ctx, sess); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create session", err)
	}

	return &StartOutput{
		SessionID: sess.SessionID,
		Question:  greeting,
		StartedAt: now,
		Status:    "running",
		Profile:   profile,
	}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*TurnOutput, error) {
	const op = "InterviewService.SubmitAnswer"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	// One in-flight turn per session: the full read-compute-append span runs
	// under the session lock.
	release, err := s.d.Locker.Acquire(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeTimeout, op, "could not acquire session", err)
	}
	defer release()

	sess, err := s.loadSession(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == interview.StatusCompleted {
		return nil, utils.E(utils.CodeConflict, op, "session already completed", nil)
	}

	tr := sess.Transcript
	history := transcript.History(tr)
	phase := interview.PhaseFor(transcript.AnswerCount(tr))
	resumeSummary := transcript.ResumeContext(tr)
	jobDescription := transcript.JobDescription(tr)

	now := s.d.Clock().UTC()
	timeExpired := interview.ShouldForceStop(sess.StartedAt, now, s.d.MaxDuration)

	lastQuestion, _ := transcript.LastQuestion(tr)

	evaluation, err := interview.EvaluateAnswer(ctx, s.d.LLM, lastQuestion, answer)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "answer evaluation unavailable", err)
	}

	directive, err := interview.NextTurn(ctx, s.d.LLM, interview.DriverInput{
		ResumeSummary:  resumeSummary,
		JobDescription: jobDescription,
		Phase:          phase,
		History:        history,
		ForceStop:      timeExpired,
	})
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "interviewer unavailable", err)
	}
	stopping := timeExpired || directive.StopInterview

	if err := s.recordAnswer(ctx, sess.SessionID, lastQuestion, answer, tr, evaluation, now); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record answer", err)
	}

	updated := transcript.Append(tr, transcript.TagCandidate, answer)
	if !stopping && directive.Question != "" {
		next := &models.InterviewQuestion{
			ID:         uuid.NewString(),
			Text:       directive.Question,
			Category:   string(phase),
			Difficulty: "medium",
			CreatedAt:  now,
		}
		if sess.TemplateID != "" {
			next.TemplateID = &sess.TemplateID
		}
		if err := s.d.Questions.Insert(ctx, next); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to persist question", err)
		}
		updated = transcript.Append(updated, transcript.TagQuestion, next.ID)
		updated = transcript.Append(updated, transcript.TagAI, directive.Question)
	}

	if err := s.d.Sessions.UpdateTranscript(ctx, sess.SessionID, updated); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to append transcript", err)
	}

	if !stopping {
		return &TurnOutput{Status: "running", Question: directive.Question, Feedback: directive.Feedback}, nil
	}

	card, err := s.finalize(ctx, op, sess, resumeSummary, jobDescription, transcript.History(updated), now)
	if err != nil {
		return nil, err
	}
	return &TurnOutput{Status: "completed", Scorecard: card}, nil
}

func (s *interviewService) ForceStop(ctx context.Context, sessionID string) (*TurnOutput, error) {
	const op = "InterviewService.ForceStop"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	release, err := s.d.Locker.Acquire(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeTimeout, op, "could not acquire session", err)
	}
	defer release()

	sess, err := s.loadSession(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == interview.StatusCompleted {
		// stop on an already-finished session just returns the scorecard
		if sess.Scorecard != nil {
			return &TurnOutput{Status: "completed", Scorecard: sess.Scorecard}, nil
		}
		return nil, utils.E(utils.CodeConflict, op, "session already completed", nil)
	}

	tr := sess.Transcript
	now := s.d.Clock().UTC()
	card, err := s.finalize(ctx, op, sess,
		transcript.ResumeContext(tr), transcript.JobDescription(tr),
		transcript.History(tr), now)
	if err != nil {
		return nil, err
	}
	return &TurnOutput{Status: "completed", Scorecard: card}, nil
}

func (s *interviewService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	const op = "InterviewService.Get"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	return s.loadSession(ctx, op, sessionID)
}

func (s *interviewService) loadSession(ctx context.Context, op, sessionID string) (*models.Session, error) {
	sess, err := s.d.Sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load session", err)
	}
	return sess, nil
}

// recordAnswer stores the answer row with its immutable evaluation, attributed
// to the question row named by the most recent [QID] marker.
func (s *interviewService) recordAnswer(ctx context.Context, sessionID, questionText, answer, tr string, ev interview.Evaluation, now time.Time) error {
	evalJSON, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	row := &models.InterviewAnswer{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		QuestionText:  questionText,
		AnswerText:    answer,
		Evaluation:    datatypes.JSON(evalJSON),
		Score:         ev.AverageScore(),
		ContentScore:  ev.ContentScore(),
		DeliveryScore: ev.DeliveryScore(),
		AIFeedback:    ev.ShortSummary,
		AnsweredAt:    now,
	}
	if qid, ok := transcript.LastQuestionID(tr); ok {
		row.QuestionID = &qid
	}
	return s.d.Answers.Insert(ctx, row)
}

// finalize performs the one terminal write: scorecard generation, session
// completion, the relational result projection, and the scorecard cache.
func (s *interviewService) finalize(ctx context.Context, op string, sess *models.Session, resumeSummary, jobDescription string, history []transcript.Turn, now time.Time) (*interview.Scorecard, error) {
	card, err := interview.Summarize(ctx, s.d.LLM, resumeSummary, jobDescription, history, sess.StartedAt, now)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "scorecard generation unavailable", err)
	}

	dur := int64(now.Sub(sess.StartedAt).Seconds())
	if dur < 0 {
		dur = 0
	}
	if err := s.d.Sessions.Complete(ctx, sess.SessionID, &card, now, dur); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to complete session", err)
	}

	// The session document is authoritative; the relational projection and the
	// cache are best-effort conveniences.
	skillJSON, _ := json.Marshal(card.SkillScores)
	result := &models.InterviewResult{
		ID:                    uuid.NewString(),
		SessionID:             sess.SessionID,
		OverallScore:          card.OverallScore,
		TechnicalScore:        card.SkillScores.RoleSpecificKnowledge,
		CommunicationScore:    card.SkillScores.Communication,
		BehavioralScore:       card.SkillScores.Confidence,
		PresentationScore:     card.SkillScores.Clarity,
		Recommendation:        interview.NormalizeRecommendation(card.FinalRecommendation),
		Strengths:             card.Strengths,
		ImprovementAreas:      card.ImprovementAreas,
		SkillScores:           datatypes.JSON(skillJSON),
		ResumeMatchPercentage: card.ResumeMatchPercentage,
		TimeTakenMinutes:      card.TimeTakenMinutes,
		CreatedAt:             now,
	}
	if err := s.d.Results.Insert(ctx, result); err != nil {
		s.d.Logger.WithError(err).WithField("session_id", sess.SessionID).Error("failed to persist interview result projection")
	}

	if s.d.Cache != nil {
		if err := s.d.Cache.SetJSON(ctx, cache.ScorecardKey(sess.SessionID), card, scorecardTTL); err != nil {
			s.d.Logger.WithError(err).Debug("scorecard cache write failed")
		}
	}

	return &card, nil
}
