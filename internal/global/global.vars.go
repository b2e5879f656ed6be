package global

import (
	"group_commerce/config"
	"group_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users        string // Tên collection cho người dùng
	Groups       string // Tên collection cho nhóm mua chung
	Requests     string // Tên collection cho yêu cầu mua hàng
	Suppliers    string // Tên collection cho nhà cung cấp
	ChatSessions string // Tên collection cho phiên trò chuyện với trợ lý
}

// Các biến toàn cục
var Validate *validator.Validate                        // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                       // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                  // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName)     // Tên các collection
var ServerStartTime int64                               // Thời điểm server khởi động (Unix millis, dùng cho health check)

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// InitColNames gán tên các collection dùng trong toàn hệ thống
func InitColNames() {
	MongoDB_ColNames.Users = "auth_users"
	MongoDB_ColNames.Groups = "buy_groups"
	MongoDB_ColNames.Requests = "buy_requests"
	MongoDB_ColNames.Suppliers = "suppliers"
	MongoDB_ColNames.ChatSessions = "chat_sessions"
}
