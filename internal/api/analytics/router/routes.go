// Package router đăng ký các route thuộc domain analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "group_commerce/internal/api/analytics/handler"
	"group_commerce/internal/api/middleware"
	apirouter "group_commerce/internal/api/router"
)

// Register đăng ký các route analytics lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("failed to create analytics handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/dashboard", []fiber.Handler{authMiddleware}, analyticsHandler.HandleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/market-insights", []fiber.Handler{authMiddleware}, analyticsHandler.HandleMarketInsights)
	return nil
}
