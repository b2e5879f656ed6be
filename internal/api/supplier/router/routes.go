// Package router đăng ký các route thuộc domain supplier.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "group_commerce/internal/api/router"
	supplierhdl "group_commerce/internal/api/supplier/handler"
)

// Register đăng ký CRUD nhà cung cấp lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	supplierHandler, err := supplierhdl.NewSupplierHandler()
	if err != nil {
		return fmt.Errorf("failed to create supplier handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/suppliers", supplierHandler, apirouter.ReadWriteConfig, "Supplier")
	return nil
}
