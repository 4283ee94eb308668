package usecase

import (
	"context"
	"log/slog"

	"meeting-notes-backend/pkg/ai"
	"meeting-notes-backend/pkg/apperror"
	"meeting-notes-backend/pkg/logger"
)

type summaryUsecase struct {
	generator ai.TextGenerator
	logger    *logger.Logger
}

func NewSummaryUsecase(generator ai.TextGenerator, log *logger.Logger) SummaryUsecase {
	return &summaryUsecase{
		generator: generator,
		logger:    log.WithComponent("summary"),
	}
}

// Summarize returns the collaborator's output unmodified. Any collaborator
// failure is reported once, without retry.
func (u *summaryUsecase) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	log := u.logger.WithContext(ctx)
	log.Info("generating summary",
		slog.Int("transcript_len", len(transcript)),
		slog.String("instruction", instruction),
	)

	summary, err := u.generator.GenerateText(ctx, BuildPrompt(instruction, transcript))
	if err != nil {
		u.logger.LogError(ctx, err, "summary generation failed")
		return "", apperror.Wrap(apperror.KindCollaborator, "Error generating summary", err)
	}

	log.Info("summary generated", slog.Int("summary_len", len(summary)))
	return summary, nil
}
