package usecase

import "context"

// SummaryUsecase turns a transcript and a caller instruction into a summary.
type SummaryUsecase interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}
