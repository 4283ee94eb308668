package delivery

import (
	"net/http"

	"meeting-notes-backend/internal/transcript/dto"
	"meeting-notes-backend/internal/transcript/usecase"
	"meeting-notes-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TranscriptHandler struct {
	transcriptUsecase usecase.TranscriptUsecase
}

func NewTranscriptHandler(transcriptUsecase usecase.TranscriptUsecase) *TranscriptHandler {
	return &TranscriptHandler{
		transcriptUsecase: transcriptUsecase,
	}
}

// Upload returns the text content of the uploaded transcript file
// POST /api/upload-transcript
func (h *TranscriptHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperror.Respond(c, apperror.Wrap(apperror.KindDecode, "Error reading file", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperror.Respond(c, apperror.Wrap(apperror.KindDecode, "Error reading file", err))
		return
	}
	defer file.Close()

	text, err := h.transcriptUsecase.Decode(fileHeader.Filename, file)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Text:     text,
		Filename: fileHeader.Filename,
	})
}
