// Package router đăng ký các route thuộc domain chat.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chathdl "group_commerce/internal/api/chat/handler"
	"group_commerce/internal/api/middleware"
	apirouter "group_commerce/internal/api/router"
)

// Register đăng ký các route chat lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatHandler, err := chathdl.NewChatHandler()
	if err != nil {
		return fmt.Errorf("failed to create chat handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/chat", "GET", "/history", []fiber.Handler{authMiddleware}, chatHandler.HandleHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat", "POST", "/message", []fiber.Handler{authMiddleware}, chatHandler.HandleMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat", "DELETE", "/clear", []fiber.Handler{authMiddleware}, chatHandler.HandleClear)
	return nil
}
