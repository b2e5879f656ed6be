// Package analyticshdl - handler cho domain analytics.
package analyticshdl

import (
	"fmt"

	analyticssvc "group_commerce/internal/api/analytics/service"
	basehdl "group_commerce/internal/api/base/handler"
	"group_commerce/internal/api/middleware"
	"group_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsHandler xử lý các request số liệu tổng hợp
type AnalyticsHandler struct {
	analyticsService *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler tạo instance mới của AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %v", err)
	}
	return &AnalyticsHandler{analyticsService: analyticsService}, nil
}

// requireUserID lấy ObjectID của user đang đăng nhập từ context.
func (h *AnalyticsHandler) requireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleDashboard trả về dashboard của người gọi
func (h *AnalyticsHandler) HandleDashboard(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	dashboard, err := h.analyticsService.GetDashboard(c.Context(), userID)
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	return basehdl.SuccessResponse(c, dashboard, common.MsgSuccess)
}

// HandleMarketInsights trả về insights thị trường
func (h *AnalyticsHandler) HandleMarketInsights(c fiber.Ctx) error {
	if _, err := h.requireUserID(c); err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	insights := h.analyticsService.GetMarketInsights(c.Context(), c.Query("category"), c.Query("timeframe", "30d"))
	return basehdl.SuccessResponse(c, insights, common.MsgSuccess)
}
