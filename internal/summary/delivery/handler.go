package delivery

import (
	"net/http"

	"meeting-notes-backend/internal/summary/dto"
	"meeting-notes-backend/internal/summary/usecase"
	"meeting-notes-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// Summarize generates a summary of the transcript following the caller's prompt
// POST /api/summarize
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.AbortWithBadRequest(c, err)
		return
	}

	summary, err := h.summaryUsecase.Summarize(c.Request.Context(), *req.Text, *req.Prompt)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}
