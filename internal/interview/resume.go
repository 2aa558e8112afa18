package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hireloop/interviewd/internal/llmjson"
	"github.com/hireloop/interviewd/internal/providers/llm"
)

// ResumeProfile is the structured view of a resume. Only the name and skills
// are consumed directly; the rest is kept as raw JSON for downstream storage.
type ResumeProfile struct {
	Name           string          `json:"name"`
	Contact        json.RawMessage `json:"contact,omitempty"`
	Education      json.RawMessage `json:"education,omitempty"`
	WorkExperience json.RawMessage `json:"work_experience,omitempty"`
	Skills         []string        `json:"skills"`
	Projects       json.RawMessage `json:"projects,omitempty"`
	Certifications json.RawMessage `json:"certifications,omitempty"`
}

// DefaultResumeProfile is the fallback when no resume was provided or the
// model's output was unusable.
func DefaultResumeProfile() ResumeProfile {
	return ResumeProfile{Name: "Candidate", Skills: []string{}}
}

// ParseResume structures raw resume text via the model. Empty input and
// malformed model output both fall back to the default profile; only a model
// call failure is surfaced.
func ParseResume(ctx context.Context, p llm.Provider, resumeText string) (ResumeProfile, error) {
	if strings.TrimSpace(resumeText) == "" {
		return DefaultResumeProfile(), nil
	}

	raw, err := p.Complete(ctx, llm.Request{
		System: resumeParserSystem,
		Prompt: fmt.Sprintf(resumeParserPrompt, resumeText),
	})
	if err != nil {
		return ResumeProfile{}, err
	}

	var prof ResumeProfile
	if !llmjson.Unmarshal(raw, &prof) {
		return DefaultResumeProfile(), nil
	}
	if strings.TrimSpace(prof.Name) == "" {
		prof.Name = "Candidate"
	}
	return prof, nil
}

// Greeting is the fixed opening question for a new session.
func Greeting(candidateName string) string {
	return fmt.Sprintf("Hello %s! Welcome to the AI Interview. Please briefly introduce yourself and tell me about your background.", candidateName)
}
