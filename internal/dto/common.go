package dto

// MessageResponse is the uniform body for outcome and error messages.
type MessageResponse struct {
	Message string `json:"message"`
}
