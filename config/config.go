package config

import (
	"os"
	"strconv"
	"time"
)

// App carries the non-datastore settings read once at startup.
type App struct {
	Port        string
	LLMProvider string // "vertex" or "openai"

	VertexProject  string
	VertexLocation string
	VertexModel    string

	OpenAIKey   string
	OpenAIModel string

	GCSBucket string

	MaxInterviewDuration time.Duration
}

func LoadApp() App {
	return App{
		Port:        getenv("PORT", "8080"),
		LLMProvider: getenv("LLM_PROVIDER", "vertex"),

		VertexProject:  os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation: getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:    getenv("VERTEX_MODEL", "gemini-1.5-flash"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),

		GCSBucket: os.Getenv("GCS_RESUME_BUCKET"),

		MaxInterviewDuration: getenvDuration("MAX_INTERVIEW_MINUTES", 5) * time.Minute,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
