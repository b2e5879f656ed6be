package main

import (
	"context"

	"group_commerce/config"
	authmodels "group_commerce/internal/api/auth/models"
	chatmodels "group_commerce/internal/api/chat/models"
	groupmodels "group_commerce/internal/api/group/models"
	requestmodels "group_commerce/internal/api/request/models"
	suppliermodels "group_commerce/internal/api/supplier/models"
	"group_commerce/internal/database"
	"group_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, buy_category, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag trong model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Groups), groupmodels.Group{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Requests), requestmodels.Request{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Suppliers), suppliermodels.Supplier{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatSessions), chatmodels.ChatSession{})

	// Các index phục vụ truy vấn marketplace (lọc nhóm theo trạng thái, smart match, ...)
	if err := database.CreateMarketplaceAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Warnf("Failed to create marketplace additional indexes: %v", err)
	}
}
