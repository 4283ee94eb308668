package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"meeting-notes-backend/pkg/apperror"
	"meeting-notes-backend/pkg/logger"
)

// TranscriptUsecase decodes uploaded transcript files.
type TranscriptUsecase interface {
	Decode(filename string, content io.Reader) (string, error)
}

type transcriptUsecase struct {
	logger *logger.Logger
}

func NewTranscriptUsecase(log *logger.Logger) TranscriptUsecase {
	return &transcriptUsecase{logger: log.WithComponent("transcript")}
}

// Decode reads content to the end and returns it as text. Content that is not
// valid UTF-8 is rejected rather than repaired.
func (u *transcriptUsecase) Decode(filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", apperror.Wrap(apperror.KindDecode, "Error reading file", err)
	}

	if !utf8.Valid(data) {
		offset := invalidOffset(data)
		u.logger.Warn("rejected non-UTF-8 upload",
			slog.String("filename", filename),
			slog.Int("offset", offset),
		)
		return "", apperror.Wrap(apperror.KindDecode, "Error reading file",
			fmt.Errorf("%w: byte 0x%02x in position %d", ErrInvalidUTF8, data[offset], offset))
	}

	u.logger.Info("transcript uploaded", slog.String("filename", filename), slog.Int("bytes", len(data)))
	return string(data), nil
}

// ErrInvalidUTF8 is wrapped by Decode when the upload is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// invalidOffset returns the index of the first byte that starts an invalid sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
