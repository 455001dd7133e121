package dto

import (
	"time"

	"github.com/resolvpay/backend/internal/application/usecase/chat"
)

// ChatMessageRequest carries one user message to the assistant.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

// ChatMessageResponse is the assistant's reply.
type ChatMessageResponse struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}

// ChatHistoryEntryResponse is one entry of the conversation log.
type ChatHistoryEntryResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistoryResponse is the conversation so far, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatHistoryEntryResponse `json:"messages"`
}

// ToChatHistoryResponse converts the conversation log to its API payload.
func ToChatHistoryResponse(entries []chat.HistoryEntry) ChatHistoryResponse {
	resp := ChatHistoryResponse{Messages: make([]ChatHistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Messages = append(resp.Messages, ChatHistoryEntryResponse{
			Role:      e.Role,
			Content:   e.Content,
			Timestamp: e.Timestamp,
		})
	}
	return resp
}
