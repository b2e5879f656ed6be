// Package models - model phiên trò chuyện với trợ lý (ChatSession) thuộc domain chat.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Người gửi tin nhắn.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Các intent mà classifier nhận diện được, theo thứ tự ưu tiên của rule.
const (
	IntentPriceInquiry          = "price_inquiry"
	IntentGroupInquiry          = "group_inquiry"
	IntentDeliveryInquiry       = "delivery_inquiry"
	IntentSupplierInquiry       = "supplier_inquiry"
	IntentRecommendationRequest = "recommendation_request"
	IntentGeneral               = "general"
	IntentGreeting              = "greeting"
)

// MessageMetadata metadata phân loại gắn vào tin nhắn của trợ lý.
type MessageMetadata struct {
	Intent     string                 `json:"intent,omitempty" bson:"intent,omitempty"`
	Confidence float64                `json:"confidence,omitempty" bson:"confidence,omitempty"`
	Entities   []string               `json:"entities,omitempty" bson:"entities,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty" bson:"context,omitempty"`
}

// ChatMessage một tin nhắn trong phiên trò chuyện.
type ChatMessage struct {
	Sender    string          `json:"sender" bson:"sender"` // user | ai
	Content   string          `json:"content" bson:"content"`
	Timestamp int64           `json:"timestamp" bson:"timestamp"`
	Metadata  MessageMetadata `json:"metadata" bson:"metadata"`
}

// SessionContext ngữ cảnh hội thoại, được thay thế toàn bộ sau mỗi lượt.
type SessionContext struct {
	ActiveGroups      []primitive.ObjectID   `json:"activeGroups" bson:"activeGroups"`
	RecentRequests    []primitive.ObjectID   `json:"recentRequests" bson:"recentRequests"`
	UserPreferences   map[string]interface{} `json:"userPreferences,omitempty" bson:"userPreferences,omitempty"`
	ConversationState string                 `json:"conversationState,omitempty" bson:"conversationState,omitempty"`
}

// ChatSession định nghĩa mô hình phiên trò chuyện.
// Mỗi user chỉ có tối đa một phiên đang hoạt động (isActive).
type ChatSession struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	IsActive  bool               `json:"isActive" bson:"isActive" default:"true"`
	Messages  []ChatMessage      `json:"messages" bson:"messages"`
	Context   SessionContext     `json:"context" bson:"context"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
