package dto

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Response string `json:"response"`
	// SuggestedStyle is null unless a style keyword matched.
	SuggestedStyle *string `json:"suggested_style"`
}
