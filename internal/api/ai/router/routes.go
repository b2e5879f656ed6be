// Package router đăng ký các route thuộc domain ai.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "group_commerce/internal/api/ai/handler"
	"group_commerce/internal/api/middleware"
	apirouter "group_commerce/internal/api/router"
)

// Register đăng ký các route ai lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	aiHandler, err := aihdl.NewAIHandler()
	if err != nil {
		return fmt.Errorf("failed to create ai handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/predict-price", []fiber.Handler{authMiddleware}, aiHandler.HandlePredictPrice)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "GET", "/demand-forecast", []fiber.Handler{authMiddleware}, aiHandler.HandleDemandForecast)
	return nil
}
