package usecase

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"meeting-notes-backend/pkg/apperror"
	"meeting-notes-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidUTF8RoundTrip(t *testing.T) {
	uc := NewTranscriptUsecase(logger.Discard())

	inputs := [][]byte{
		[]byte("Alice: Let's review the budget.\nBob: Agreed."),
		[]byte(""),
		[]byte("Réunion — 会議 — 🚀\r\n"),
		[]byte("\xef\xbb\xbfBOM is kept"),
	}

	for _, in := range inputs {
		text, err := uc.Decode("notes.txt", bytes.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, string(in), text)
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	uc := NewTranscriptUsecase(logger.Discard())

	_, err := uc.Decode("recording.bin", bytes.NewReader([]byte{'o', 'k', 0xff, 0xfe}))

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindDecode))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "Error reading file: ")
	assert.Contains(t, err.Error(), "0xff in position 2")
}

func TestDecodeTruncatedSequence(t *testing.T) {
	uc := NewTranscriptUsecase(logger.Discard())

	// First two bytes of a three-byte sequence.
	_, err := uc.Decode("cut.txt", bytes.NewReader([]byte{'a', 0xe4, 0xbc}))

	assert.True(t, apperror.Is(err, apperror.KindDecode))
	assert.Contains(t, err.Error(), "position 1")
}

func TestDecodeReadError(t *testing.T) {
	uc := NewTranscriptUsecase(logger.Discard())

	_, err := uc.Decode("broken.txt", iotest.ErrReader(errors.New("connection reset")))

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindDecode))
	assert.Equal(t, "Error reading file: connection reset", err.Error())
}
