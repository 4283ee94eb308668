package api

import (
	"context"
	"log/slog"

	emailDelivery "meeting-notes-backend/internal/email/delivery"
	emailUsecasePkg "meeting-notes-backend/internal/email/usecase"
	summaryDelivery "meeting-notes-backend/internal/summary/delivery"
	summaryUsecasePkg "meeting-notes-backend/internal/summary/usecase"
	transcriptDelivery "meeting-notes-backend/internal/transcript/delivery"
	transcriptUsecasePkg "meeting-notes-backend/internal/transcript/usecase"
	"meeting-notes-backend/pkg/ai"
	"meeting-notes-backend/pkg/config"
	"meeting-notes-backend/pkg/logger"
	"meeting-notes-backend/pkg/mailer"
	"meeting-notes-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config            *config.Config
	logger            *logger.Logger
	summaryHandler    *summaryDelivery.SummaryHandler
	transcriptHandler *transcriptDelivery.TranscriptHandler
	emailHandler      *emailDelivery.EmailHandler
}

// NewHandler wires the three request handlers from the process configuration.
func NewHandler(cfg *config.Config, log *logger.Logger) *Handler {
	aiCfg := ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	}
	generator, err := ai.NewTextGenerator(context.Background(), aiCfg)
	if err != nil {
		log.Warn("AI service unavailable, summarize requests will fail", slog.String("error", err.Error()))
		generator = ai.Unavailable(err)
	} else {
		log.Info("AI service initialized", slog.String("provider", cfg.AIProvider))
	}

	relay := mailer.NewRelay(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword)
	if !cfg.HasEmailCredentials() {
		log.Warn("EMAIL_USER or EMAIL_PASSWORD not set, send-email requests will fail")
	} else {
		log.Info("SMTP relay configured", slog.String("addr", relay.Addr()))
	}

	return newHandler(cfg, log, generator, relay)
}

func newHandler(cfg *config.Config, log *logger.Logger, generator ai.TextGenerator, sender emailUsecasePkg.Sender) *Handler {
	summaryUc := summaryUsecasePkg.NewSummaryUsecase(generator, log)
	transcriptUc := transcriptUsecasePkg.NewTranscriptUsecase(log)
	emailUc := emailUsecasePkg.NewEmailUsecase(emailUsecasePkg.RelayConfig{
		Server:   cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
	}, sender, log)

	return &Handler{
		config:            cfg,
		logger:            log,
		summaryHandler:    summaryDelivery.NewSummaryHandler(summaryUc),
		transcriptHandler: transcriptDelivery.NewTranscriptHandler(transcriptUc),
		emailHandler:      emailDelivery.NewEmailHandler(emailUc),
	}
}

// Router builds the gin engine with middleware and routes.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLoggingMiddleware(h.logger))
	r.Use(metrics.Middleware())
	r.Use(corsMiddleware())

	SetupRoutes(r, h.summaryHandler, h.transcriptHandler, h.emailHandler)

	return r
}
