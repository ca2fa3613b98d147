package dto

// APIResponse is the envelope every handler returns.
// Failures carry Success=false plus a human-readable Message and optional Error detail.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Preview bool        `json:"preview,omitempty"` // true for generated-but-unpersisted quizzes
}

func Success(data interface{}, message string) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func Error(message string, detail string) APIResponse {
	return APIResponse{Success: false, Message: message, Error: detail}
}
