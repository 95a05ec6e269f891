package models

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ProxyRequest is the payload sent to POST /ai.
type ProxyRequest struct {
	Prompt string `json:"prompt"`
}

// ProxyResponse carries the model's reply.
type ProxyResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the failure body of POST /ai.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
