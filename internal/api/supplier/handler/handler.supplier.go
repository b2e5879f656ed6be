// Package supplierhdl - handler cho domain supplier.
// Toàn bộ surface là CRUD generic, đăng ký qua RegisterCRUDRoutes.
package supplierhdl

import (
	"fmt"

	basehdl "group_commerce/internal/api/base/handler"
	supplierdto "group_commerce/internal/api/supplier/dto"
	models "group_commerce/internal/api/supplier/models"
	suppliersvc "group_commerce/internal/api/supplier/service"
)

// SupplierHandler xử lý các request CRUD nhà cung cấp
type SupplierHandler struct {
	*basehdl.BaseHandler[models.Supplier, supplierdto.SupplierCreateInput, supplierdto.SupplierUpdateInput]
	supplierService *suppliersvc.SupplierService
}

// NewSupplierHandler tạo instance mới của SupplierHandler
func NewSupplierHandler() (*SupplierHandler, error) {
	supplierService, err := suppliersvc.NewSupplierService()
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Supplier, supplierdto.SupplierCreateInput, supplierdto.SupplierUpdateInput](supplierService)
	return &SupplierHandler{
		BaseHandler:     baseHandler,
		supplierService: supplierService,
	}, nil
}
