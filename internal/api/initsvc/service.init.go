// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu.
// Tách ra package riêng để tránh import cycle giữa các domain service.
package initsvc

import (
	"context"
	"fmt"

	suppliermodels "group_commerce/internal/api/supplier/models"
	suppliersvc "group_commerce/internal/api/supplier/service"
	"group_commerce/internal/common"
	"group_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống
type InitService struct {
	supplierService *suppliersvc.SupplierService
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	supplierService, err := suppliersvc.NewSupplierService()
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier service: %v", err)
	}
	return &InitService{supplierService: supplierService}, nil
}

// defaultSuppliers danh sách nhà cung cấp mẫu, chỉ tạo khi chưa tồn tại (so theo tên).
var defaultSuppliers = []suppliermodels.Supplier{
	{
		Name:            "Nông Sản Xanh",
		BusinessDetails: "Nhà cung cấp gạo và ngũ cốc số lượng lớn",
		Categories:      []string{"Grains & Cereals"},
		Products: []suppliermodels.SupplierProduct{
			{Name: "Basmati Rice", Category: "Grains & Cereals", CurrentPrice: 62, Unit: "kg", MinimumOrder: 50},
			{Name: "Wheat", Category: "Grains & Cereals", CurrentPrice: 33, Unit: "kg", MinimumOrder: 100},
		},
		IsVerified: true,
		IsActive:   true,
	},
	{
		Name:            "Chợ Đầu Mối Rau Củ",
		BusinessDetails: "Rau củ tươi giao trong ngày",
		Categories:      []string{"Vegetables"},
		Products: []suppliermodels.SupplierProduct{
			{Name: "Tomato", Category: "Vegetables", CurrentPrice: 28, Unit: "kg", MinimumOrder: 20},
			{Name: "Onion", Category: "Vegetables", CurrentPrice: 23, Unit: "kg", MinimumOrder: 20},
		},
		IsVerified: true,
		IsActive:   true,
	},
}

// InitSuppliers tạo các nhà cung cấp mẫu nếu chưa có.
// Chạy khi server khởi động ở chế độ INITMODE.
func (h *InitService) InitSuppliers() error {
	log := logger.GetAppLogger()
	for _, supplier := range defaultSuppliers {
		filter := bson.M{"name": supplier.Name}
		_, err := h.supplierService.BaseServiceMongoImpl.FindOne(context.TODO(), filter, nil)
		if err == nil {
			continue
		}
		if err != common.ErrNotFound {
			return fmt.Errorf("failed to check supplier %s: %v", supplier.Name, err)
		}
		if _, err := h.supplierService.InsertOne(context.TODO(), supplier); err != nil {
			return fmt.Errorf("failed to insert supplier %s: %v", supplier.Name, err)
		}
		log.Infof("Đã tạo nhà cung cấp mẫu: %s", supplier.Name)
	}
	return nil
}
