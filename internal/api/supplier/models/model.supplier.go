// Package models - model nhà cung cấp (Supplier) thuộc domain supplier.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplierProduct một mặt hàng nhà cung cấp đang bán.
type SupplierProduct struct {
	Name           string   `json:"name" bson:"name"`
	Category       string   `json:"category" bson:"category"`
	CurrentPrice   float64  `json:"currentPrice" bson:"currentPrice"`
	Unit           string   `json:"unit" bson:"unit"`
	MinimumOrder   float64  `json:"minimumOrder,omitempty" bson:"minimumOrder,omitempty"`
	MaxSupply      float64  `json:"maxSupply,omitempty" bson:"maxSupply,omitempty"`
	QualityGrade   string   `json:"qualityGrade,omitempty" bson:"qualityGrade,omitempty"`
	Certifications []string `json:"certifications,omitempty" bson:"certifications,omitempty"`
}

// SupplierRatings điểm đánh giá tích luỹ của nhà cung cấp.
type SupplierRatings struct {
	Overall       float64 `json:"overall" bson:"overall"`
	Quality       float64 `json:"quality" bson:"quality"`
	Delivery      float64 `json:"delivery" bson:"delivery"`
	Pricing       float64 `json:"pricing" bson:"pricing"`
	Communication float64 `json:"communication" bson:"communication"`
	TotalReviews  int     `json:"totalReviews" bson:"totalReviews"`
}

// SupplierPerformance thống kê vận hành của nhà cung cấp.
type SupplierPerformance struct {
	TotalOrders     int     `json:"totalOrders" bson:"totalOrders"`
	CompletedOrders int     `json:"completedOrders" bson:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders" bson:"cancelledOrders"`
	OnTimeDelivery  float64 `json:"onTimeDelivery" bson:"onTimeDelivery"`
	LastActiveDate  int64   `json:"lastActiveDate,omitempty" bson:"lastActiveDate,omitempty"`
}

// SupplierAIMetrics điểm số AI của nhà cung cấp, mặc định 50/50/24/50.
type SupplierAIMetrics struct {
	ReliabilityScore     float64 `json:"reliabilityScore" bson:"reliabilityScore"`
	PriceCompetitiveness float64 `json:"priceCompetitiveness" bson:"priceCompetitiveness"`
	ResponseTime         float64 `json:"responseTime" bson:"responseTime"` // giờ
	QualityConsistency   float64 `json:"qualityConsistency" bson:"qualityConsistency"`
}

// SupplierAddress địa chỉ nhà cung cấp.
type SupplierAddress struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// Supplier định nghĩa mô hình nhà cung cấp.
type Supplier struct {
	_Relationships  struct{}            `relationship:"collection:buy_groups,field:supplierId,message:Không thể xóa nhà cung cấp vì có %d nhóm mua chung đang gắn với nhà cung cấp này.,optional:1"`
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string              `json:"name" bson:"name"`
	ContactPerson   string              `json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	BusinessDetails string              `json:"businessDetails,omitempty" bson:"businessDetails,omitempty"`
	Address         SupplierAddress     `json:"address" bson:"address"`
	ServiceAreas    []string            `json:"serviceAreas" bson:"serviceAreas"`
	Categories      []string            `json:"categories" bson:"categories"`
	Products        []SupplierProduct   `json:"products" bson:"products"`
	Ratings         SupplierRatings     `json:"ratings" bson:"ratings"`
	Performance     SupplierPerformance `json:"performance" bson:"performance"`
	AIMetrics       SupplierAIMetrics   `json:"aiMetrics" bson:"aiMetrics"`
	IsVerified      bool                `json:"isVerified" bson:"isVerified"`
	IsActive        bool                `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
}

// SupplierPaginateResult đại diện cho kết quả phân trang Supplier
type SupplierPaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Supplier `json:"items" bson:"items"`
}
