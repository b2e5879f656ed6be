// Package aidto - DTO cho các endpoint và kết quả chấm điểm AI.
package aidto

import (
	groupmodels "group_commerce/internal/api/group/models"
)

// GroupRecommendation một nhóm được gợi ý cho người dùng, kèm điểm và lý do.
type GroupRecommendation struct {
	Group    groupmodels.Group `json:"group"`
	Score    float64           `json:"score"`
	Priority string            `json:"priority"` // high | medium | low
	Reasons  []string          `json:"reasons"`
}

// PredictPriceInput đầu vào dự đoán giá.
type PredictPriceInput struct {
	ProductName string  `json:"productName" validate:"required,min=2,no_xss"`
	Category    string  `json:"category,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
}

// PricePrediction kết quả dự đoán giá cho một sản phẩm.
type PricePrediction struct {
	ProductName     string   `json:"productName"`
	BasePrice       float64  `json:"basePrice"`
	PredictedPrice  float64  `json:"predictedPrice"`
	Discount        float64  `json:"discount"` // phần trăm giảm theo bậc số lượng
	SeasonalFactor  float64  `json:"seasonalFactor"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// DemandForecast mức nhu cầu dự báo của một khung thời gian.
type DemandForecast struct {
	Demand     string  `json:"demand"` // high | medium | low
	Confidence float64 `json:"confidence"`
	Change     string  `json:"change"` // ví dụ "+15%"
}

// DemandForecastResult dự báo nhu cầu theo khung thời gian.
type DemandForecastResult struct {
	Timeframe string         `json:"timeframe"` // 7d | 30d | 90d
	Forecast  DemandForecast `json:"forecast"`
	Factors   []string       `json:"factors"`
}
