package api

import (
	"net/http"

	emailDelivery "meeting-notes-backend/internal/email/delivery"
	summaryDelivery "meeting-notes-backend/internal/summary/delivery"
	transcriptDelivery "meeting-notes-backend/internal/transcript/delivery"
	"meeting-notes-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, summaryHandler *summaryDelivery.SummaryHandler, transcriptHandler *transcriptDelivery.TranscriptHandler, emailHandler *emailDelivery.EmailHandler) {
	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Meeting Notes Summarizer API"})
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/summarize", summaryHandler.Summarize)
		api.POST("/upload-transcript", transcriptHandler.Upload)
		api.POST("/send-email", emailHandler.SendEmail)
	}
}
