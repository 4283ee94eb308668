package dto

type SendEmailRequest struct {
	Summary    *string  `json:"summary" binding:"required"`
	Recipients []string `json:"recipients" binding:"required"`
	Subject    string   `json:"subject"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
