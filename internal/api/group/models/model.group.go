// Package models - model nhóm mua chung (Group) thuộc domain group.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái nhóm mua chung.
const (
	GroupStatusActive     = "active"
	GroupStatusCompleted  = "completed"
	GroupStatusCancelled  = "cancelled"
	GroupStatusProcessing = "processing"
)

// Trạng thái thành viên trong nhóm.
const (
	MemberStatusActive    = "active"
	MemberStatusLeft      = "left"
	MemberStatusCompleted = "completed"
)

// GroupMember một thành viên trong nhóm mua chung.
type GroupMember struct {
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	QuantityNeeded float64            `json:"quantityNeeded" bson:"quantityNeeded"`
	JoinedAt       int64              `json:"joinedAt" bson:"joinedAt"`
	Status         string             `json:"status" bson:"status"` // active | left | completed
}

// Coordinates tọa độ giao hàng.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// DeliveryLocation địa điểm giao hàng của nhóm.
type DeliveryLocation struct {
	Address     string      `json:"address,omitempty" bson:"address,omitempty"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// DeliveryDetails thông tin giao nhận của nhóm.
type DeliveryDetails struct {
	ExpectedDate int64            `json:"expectedDate,omitempty" bson:"expectedDate,omitempty"`
	Location     DeliveryLocation `json:"location" bson:"location"`
	DeliveryType string           `json:"deliveryType,omitempty" bson:"deliveryType,omitempty"` // pickup | delivery
}

// GroupAIMetrics điểm số AI gắn vào nhóm lúc tạo, do MetricsScorer sinh ra.
type GroupAIMetrics struct {
	DemandScore              float64 `json:"demandScore" bson:"demandScore"`
	PriceOptimizationScore   float64 `json:"priceOptimizationScore" bson:"priceOptimizationScore"`
	DeliveryEfficiencyScore  float64 `json:"deliveryEfficiencyScore" bson:"deliveryEfficiencyScore"`
	MemberCompatibilityScore float64 `json:"memberCompatibilityScore" bson:"memberCompatibilityScore"`
}

// Group định nghĩa mô hình nhóm mua chung.
// Bất biến: CurrentQuantity = tổng quantityNeeded của các member đang active;
// CompletionPercentage được tính lại mỗi lần thành viên thay đổi.
type Group struct {
	_Relationships       struct{}           `relationship:"collection:buy_requests,field:matchedGroups.groupId,message:Không thể xóa nhóm vì có %d yêu cầu mua đã được ghép với nhóm này.,optional:1"`
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title                string             `json:"title" bson:"title"`
	ProductName          string             `json:"productName" bson:"productName"`
	Category             string             `json:"category" bson:"category"`
	TargetQuantity       float64            `json:"targetQuantity" bson:"targetQuantity"`
	CurrentQuantity      float64            `json:"currentQuantity" bson:"currentQuantity"`
	Unit                 string             `json:"unit" bson:"unit" default:"kg"`
	PricePerUnit         float64            `json:"pricePerUnit" bson:"pricePerUnit"`
	MarketPrice          float64            `json:"marketPrice" bson:"marketPrice"`
	Savings              float64            `json:"savings" bson:"savings"` // = MarketPrice - PricePerUnit (trên mỗi đơn vị)
	CreatorID            primitive.ObjectID `json:"creatorId" bson:"creatorId"`
	Members              []GroupMember      `json:"members" bson:"members"`
	SupplierID           primitive.ObjectID `json:"supplierId,omitempty" bson:"supplierId,omitempty"`
	DeliveryDetails      DeliveryDetails    `json:"deliveryDetails" bson:"deliveryDetails"`
	Status               string             `json:"status" bson:"status" default:"active"`
	CompletionPercentage int                `json:"completionPercentage" bson:"completionPercentage"`
	AIMetrics            GroupAIMetrics     `json:"aiMetrics" bson:"aiMetrics"`
	ExpiresAt            int64              `json:"expiresAt" bson:"expiresAt"` // thời điểm tạo + 7 ngày
	CreatedAt            int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64              `json:"updatedAt" bson:"updatedAt"`
}

// ActiveQuantity tính tổng số lượng của các thành viên đang active.
func (g *Group) ActiveQuantity() float64 {
	var total float64
	for _, m := range g.Members {
		if m.Status == MemberStatusActive {
			total += m.QuantityNeeded
		}
	}
	return total
}

// FindMember trả về index của membership record theo userId, -1 nếu không có.
func (g *Group) FindMember(userID primitive.ObjectID) int {
	for i, m := range g.Members {
		if m.UserID == userID {
			return i
		}
	}
	return -1
}

// GroupPaginateResult đại diện cho kết quả phân trang Group
type GroupPaginateResult struct {
	Page      int64   `json:"page" bson:"page"`
	Limit     int64   `json:"limit" bson:"limit"`
	ItemCount int64   `json:"itemCount" bson:"itemCount"`
	Items     []Group `json:"items" bson:"items"`
}
