package dto

// SummaryRequest fields are pointers so that "required" checks presence
// only; an empty transcript or instruction is still forwarded.
type SummaryRequest struct {
	Text   *string `json:"text" binding:"required"`
	Prompt *string `json:"prompt" binding:"required"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
