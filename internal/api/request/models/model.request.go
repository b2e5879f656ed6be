// Package models - model yêu cầu mua hàng (Request) thuộc domain request.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái yêu cầu mua hàng.
const (
	RequestStatusOpen      = "open"
	RequestStatusMatched   = "matched"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
)

// Loại gợi ý AI gắn vào yêu cầu lúc tạo.
const (
	SuggestionPriceOptimization = "price_optimization"
	SuggestionTiming            = "timing"
	SuggestionAlternative       = "alternative"
	SuggestionSupplier          = "supplier"
)

// MatchedGroup một nhóm mua được ghép với yêu cầu, kèm điểm và lý do.
type MatchedGroup struct {
	GroupID          primitive.ObjectID `json:"groupId" bson:"groupId"`
	MatchScore       float64            `json:"matchScore" bson:"matchScore"`
	Reasons          []string           `json:"reasons" bson:"reasons"`
	EstimatedSavings float64            `json:"estimatedSavings" bson:"estimatedSavings"`
}

// AISuggestion một gợi ý AI sinh ra khi tạo yêu cầu.
type AISuggestion struct {
	Type     string                 `json:"type" bson:"type"` // price_optimization | timing | alternative | supplier
	Message  string                 `json:"message" bson:"message"`
	Data     map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	Priority string                 `json:"priority" bson:"priority"` // high | medium | low
}

// RequestResponse phản hồi của một người dùng khác cho yêu cầu.
type RequestResponse struct {
	ResponderID  primitive.ObjectID `json:"responderId" bson:"responderId"`
	Message      string             `json:"message" bson:"message"`
	PriceQuote   float64            `json:"priceQuote,omitempty" bson:"priceQuote,omitempty"`
	DeliveryDate int64              `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
}

// RequestLocation vị trí nhận hàng của yêu cầu.
type RequestLocation struct {
	Address string  `json:"address,omitempty" bson:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// Request định nghĩa mô hình yêu cầu mua hàng.
// MatchedGroups được worker smart match ghi vào sau khi tạo (xem service.request.match.go).
type Request struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	ProductName      string             `json:"productName" bson:"productName"`
	Category         string             `json:"category" bson:"category"`
	Quantity         float64            `json:"quantity" bson:"quantity"`
	Unit             string             `json:"unit" bson:"unit" default:"kg"`
	ExpectedDelivery int64              `json:"expectedDelivery,omitempty" bson:"expectedDelivery,omitempty"`
	MaxPrice         float64            `json:"maxPrice,omitempty" bson:"maxPrice,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Urgency          string             `json:"urgency" bson:"urgency" default:"medium"` // low | medium | high
	Location         RequestLocation    `json:"location" bson:"location"`
	Status           string             `json:"status" bson:"status" default:"open"`
	MatchedGroups    []MatchedGroup     `json:"matchedGroups" bson:"matchedGroups"`
	AISuggestions    []AISuggestion     `json:"aiSuggestions" bson:"aiSuggestions"`
	Responses        []RequestResponse  `json:"responses" bson:"responses"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// RequestPaginateResult đại diện cho kết quả phân trang Request
type RequestPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Request `json:"items" bson:"items"`
}
