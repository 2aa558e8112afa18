package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hireloop/interviewd/config"
	"github.com/hireloop/interviewd/internal/api/handlers"
	"github.com/hireloop/interviewd/internal/api/middleware"
	"github.com/hireloop/interviewd/internal/api/routes"
	"github.com/hireloop/interviewd/internal/cache"
	"github.com/hireloop/interviewd/internal/locks"
	"github.com/hireloop/interviewd/internal/logger"
	"github.com/hireloop/interviewd/internal/providers/doctext"
	"github.com/hireloop/interviewd/internal/providers/llm"
	mongorepo "github.com/hireloop/interviewd/internal/repositories/mongo"
	pgrepo "github.com/hireloop/interviewd/internal/repositories/postgres"
	"github.com/hireloop/interviewd/internal/services"
	"github.com/hireloop/interviewd/internal/storage"
)

func main() {
	_ = godotenv.Load()

	app := config.LoadApp()
	lg := logger.New()

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	fmt.Println("MongoDB connected")
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	fmt.Println("PostgreSQL connected")

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	fmt.Println("Redis connected")

	ctx := context.Background()

	provider, err := newLLMProvider(ctx, app)
	if err != nil {
		log.Fatalf("LLM provider init error: %v", err)
	}
	defer provider.Close()

	var uploader storage.Uploader
	if app.GCSBucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, app.GCSBucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		uploader = gcs
	} else {
		lg.Warn("GCS_RESUME_BUCKET not set; resume archival disabled")
	}

	sessions := mongorepo.NewSessionRepo(config.MongoDatabase())
	answers := pgrepo.NewAnswerRepo(config.PostgresDB)
	questions := pgrepo.NewQuestionRepo(config.PostgresDB)
	results := pgrepo.NewResultRepo(config.PostgresDB)
	resumeFiles := pgrepo.NewResumeFileRepo(config.PostgresDB)

	interviewSvc := services.NewInterviewService(services.InterviewDeps{
		Sessions:    sessions,
		Answers:     answers,
		Questions:   questions,
		Results:     results,
		LLM:         provider,
		Locker:      locks.NewRedisLocker(config.RedisClient, 0),
		Cache:       cache.NewRedisCache(config.RedisClient),
		Logger:      lg,
		MaxDuration: app.MaxInterviewDuration,
	})
	resumeSvc := services.NewResumeService(doctext.NewPDFExtractor(lg), uploader, resumeFiles, lg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(lg))

	routes.RegisterRoutes(r, routes.Deps{
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Resume:    handlers.NewResumeHandler(resumeSvc, lg),
	})

	if err := r.Run(":" + app.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newLLMProvider(ctx context.Context, app config.App) (llm.Provider, error) {
	switch strings.ToLower(app.LLMProvider) {
	case "openai":
		return llm.NewOpenAI(app.OpenAIKey, app.OpenAIModel)
	default:
		return llm.NewVertexGemini(ctx, app.VertexProject, app.VertexLocation, app.VertexModel)
	}
}
