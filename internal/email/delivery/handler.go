package delivery

import (
	"net/http"

	"meeting-notes-backend/internal/email/dto"
	"meeting-notes-backend/internal/email/usecase"
	"meeting-notes-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
	}
}

// SendEmail mails a generated summary to the given recipients
// POST /api/send-email
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.AbortWithBadRequest(c, err)
		return
	}

	if err := h.emailUsecase.SendSummary(c.Request.Context(), *req.Summary, req.Recipients, req.Subject); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email sent successfully"})
}
