package main

import (
	"group_commerce/internal/api/initsvc"
	"group_commerce/internal/global"
	"group_commerce/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi chạy ở chế độ INITMODE.
// Hiện tại chỉ seed nhà cung cấp mẫu để môi trường mới có dữ liệu demo.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("INITMODE tắt, bỏ qua khởi tạo dữ liệu mặc định")
		return
	}

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	if err := initService.InitSuppliers(); err != nil {
		log.Warnf("Failed to initialize default suppliers: %v", err)
	} else {
		log.Info("Đã khởi tạo nhà cung cấp mẫu")
	}
}
