package dto

type UploadResponse struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}
