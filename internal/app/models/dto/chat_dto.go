package dto

// ChatRequest represents a chatbot widget message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the canned reply for a chatbot message
type ChatResponse struct {
	Reply string `json:"reply"`
}
