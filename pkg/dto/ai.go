package dto

type SuggestRequest struct {
	Text    string `json:"text" validate:"required,min=3"`
	Context string `json:"context,omitempty"`
}
