// Package aihdl - handler cho các endpoint dự đoán giá và dự báo nhu cầu.
package aihdl

import (
	"time"

	aidto "group_commerce/internal/api/ai/dto"
	aisvc "group_commerce/internal/api/ai/service"
	basehdl "group_commerce/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AIHandler xử lý các request liên quan đến dự đoán giá và nhu cầu
type AIHandler struct {
	*basehdl.BaseHandler[struct{}, aidto.PredictPriceInput, struct{}]
}

// NewAIHandler tạo instance mới của AIHandler.
// Các endpoint này chỉ dùng hàm thuần nên không cần service storage phía sau.
func NewAIHandler() (*AIHandler, error) {
	return &AIHandler{
		BaseHandler: &basehdl.BaseHandler[struct{}, aidto.PredictPriceInput, struct{}]{},
	}, nil
}

// HandlePredictPrice dự đoán giá sản phẩm theo số lượng và mùa vụ
func (h *AIHandler) HandlePredictPrice(c fiber.Ctx) error {
	var input aidto.PredictPriceInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	prediction := aisvc.PredictPrice(input.ProductName, input.Category, input.Quantity, time.Now())
	h.HandleResponse(c, prediction, nil)
	return nil
}

// HandleDemandForecast trả về dự báo nhu cầu theo khung thời gian 7d/30d/90d
func (h *AIHandler) HandleDemandForecast(c fiber.Ctx) error {
	timeframe := c.Query("timeframe", "30d")
	forecast := aisvc.ForecastDemand(timeframe)
	h.HandleResponse(c, forecast, nil)
	return nil
}
