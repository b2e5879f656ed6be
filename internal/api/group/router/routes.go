// Package router đăng ký các route thuộc domain group.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	grouphdl "group_commerce/internal/api/group/handler"
	"group_commerce/internal/api/middleware"
	apirouter "group_commerce/internal/api/router"
)

// Register đăng ký các route group lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	groupHandler, err := grouphdl.NewGroupHandler()
	if err != nil {
		return fmt.Errorf("failed to create group handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "GET", "/", []fiber.Handler{authMiddleware}, groupHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "POST", "/", []fiber.Handler{authMiddleware}, groupHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "GET", "/:id", []fiber.Handler{authMiddleware}, groupHandler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "POST", "/:id/join", []fiber.Handler{authMiddleware}, groupHandler.HandleJoin)
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "POST", "/:id/leave", []fiber.Handler{authMiddleware}, groupHandler.HandleLeave)
	return nil
}
