// Package requestdto - DTO cho domain request.
package requestdto

// RequestCreateInput đầu vào tạo yêu cầu mua hàng.
type RequestCreateInput struct {
	ProductName      string  `json:"productName" validate:"required,min=2,no_xss"`
	Category         string  `json:"category" validate:"required,buy_category"`
	Quantity         float64 `json:"quantity" validate:"required,gt=0"`
	Unit             string  `json:"unit,omitempty"`
	ExpectedDelivery int64   `json:"expectedDelivery,omitempty"`
	MaxPrice         float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	Description      string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	Urgency          string  `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high"`
	Address          string  `json:"address,omitempty" validate:"omitempty,no_xss"`
}

// RequestUpdateInput đầu vào cập nhật yêu cầu (CRUD).
type RequestUpdateInput struct {
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=open matched completed cancelled"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}
