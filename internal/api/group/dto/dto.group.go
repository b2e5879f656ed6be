// Package groupdto - DTO cho domain group.
package groupdto

import (
	aidto "group_commerce/internal/api/ai/dto"
	models "group_commerce/internal/api/group/models"
)

// GroupCreateInput đầu vào tạo nhóm mua chung.
type GroupCreateInput struct {
	ProductName     string  `json:"productName" validate:"required,min=2,no_xss"`
	Category        string  `json:"category" validate:"required,buy_category"`
	TargetQuantity  float64 `json:"targetQuantity" validate:"required,gte=1"`
	Unit            string  `json:"unit,omitempty"`
	PricePerUnit    float64 `json:"pricePerUnit" validate:"required,gt=0"`
	MarketPrice     float64 `json:"marketPrice,omitempty" validate:"omitempty,gte=0"`
	DeliveryDate    int64   `json:"deliveryDate,omitempty"`
	DeliveryAddress string  `json:"deliveryAddress,omitempty" validate:"omitempty,no_xss"`
	DeliveryType    string  `json:"deliveryType,omitempty" validate:"omitempty,oneof=pickup delivery"`
}

// GroupUpdateInput đầu vào cập nhật nhóm (CRUD).
type GroupUpdateInput struct {
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active completed cancelled processing"`
	SupplierID string `json:"supplierId,omitempty" transform:"str_objectid,optional" bson:"supplierId"`
}

// GroupJoinInput đầu vào tham gia nhóm.
type GroupJoinInput struct {
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// GroupListQuery tham số lọc danh sách nhóm.
// Client gửi dưới dạng JSON trong query param "query".
type GroupListQuery struct {
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Search   string `json:"search,omitempty"`
	Page     int64  `json:"page,omitempty"`
	Limit    int64  `json:"limit,omitempty"`
}

// PaginationInfo thông tin phân trang trả về cùng danh sách nhóm.
type PaginationInfo struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
}

// GroupListResult danh sách nhóm kèm gợi ý AI cho người gọi.
type GroupListResult struct {
	Groups          []models.Group              `json:"groups"`
	Recommendations []aidto.GroupRecommendation `json:"recommendations"`
	Pagination      PaginationInfo              `json:"pagination"`
}

// GroupJoinResult kết quả tham gia nhóm, kèm mức tiết kiệm ước tính.
type GroupJoinResult struct {
	Group   *models.Group `json:"group"`
	Savings float64       `json:"savings"`
}
