package dto

import "finance-dashboard/internal/models"

// AssistantRequest carries the free-text habits hint. The descriptions come
// from the loaded statement.
type AssistantRequest struct {
	Habits string `json:"habits" validate:"max=1000"`
}

type AssistantResponse struct {
	Provider     string               `json:"provider"`
	Categories   models.CategoryMap   `json:"categories"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
}

// OpenAI-compatible chat completion payloads

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []ChatMessage       `json:"messages"`
	ResponseFormat *ChatResponseFormat `json:"response_format,omitempty"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
