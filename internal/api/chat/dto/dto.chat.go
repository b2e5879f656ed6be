// Package chatdto - các DTO cho domain chat.
package chatdto

import (
	models "group_commerce/internal/api/chat/models"
)

// ChatMessageInput dữ liệu gửi tin nhắn tới trợ lý.
type ChatMessageInput struct {
	Message string `json:"message" validate:"required,no_xss"`
}

// ChatReply kết quả một lượt hội thoại: tin nhắn trả lời và phiên đã cập nhật.
type ChatReply struct {
	Reply   models.ChatMessage  `json:"reply"`
	Session *models.ChatSession `json:"session"`
}
