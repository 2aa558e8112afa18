package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/interviewd/internal/api/handlers"
)

type Deps struct {
	Interview *handlers.InterviewHandler
	Resume    *handlers.ResumeHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "interviewd"})
	})

	iv := r.Group("/interview")
	iv.POST("/start", d.Interview.Start)
	iv.POST("/answer", d.Interview.Answer)
	iv.POST("/stop", d.Interview.Stop)
	iv.GET("/:session_id", d.Interview.Get)
	iv.POST("/parse-resume", d.Resume.Parse)
}
