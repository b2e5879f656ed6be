// Package router đăng ký các route thuộc domain request.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"group_commerce/internal/api/middleware"
	requesthdl "group_commerce/internal/api/request/handler"
	apirouter "group_commerce/internal/api/router"
)

// Register đăng ký các route request lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	requestHandler, err := requesthdl.NewRequestHandler()
	if err != nil {
		return fmt.Errorf("failed to create request handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "POST", "/", []fiber.Handler{authMiddleware}, requestHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/", []fiber.Handler{authMiddleware}, requestHandler.HandleListMine)
	return nil
}
