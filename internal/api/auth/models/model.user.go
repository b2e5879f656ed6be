// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates tọa độ địa lý.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Address địa chỉ kinh doanh của người dùng.
type Address struct {
	Street      string      `json:"street,omitempty" bson:"street,omitempty"`
	City        string      `json:"city,omitempty" bson:"city,omitempty"`
	State       string      `json:"state,omitempty" bson:"state,omitempty"`
	Pincode     string      `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// UserProfile thông tin kinh doanh của người dùng.
type UserProfile struct {
	BusinessName string  `json:"businessName,omitempty" bson:"businessName,omitempty"`
	BusinessType string  `json:"businessType,omitempty" bson:"businessType,omitempty"`
	Address      Address `json:"address" bson:"address"`
	GstNumber    string  `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	PanNumber    string  `json:"panNumber,omitempty" bson:"panNumber,omitempty"`
	IsVerified   bool    `json:"isVerified" bson:"isVerified"`
}

// NotificationPreferences các kênh nhận thông báo.
type NotificationPreferences struct {
	Email bool `json:"email" bson:"email"`
	Sms   bool `json:"sms" bson:"sms"`
	Push  bool `json:"push" bson:"push"`
}

// UserPreferences tuỳ chọn mua hàng của người dùng.
type UserPreferences struct {
	Categories          []string                `json:"categories" bson:"categories"`
	MaxDeliveryDistance int                     `json:"maxDeliveryDistance" bson:"maxDeliveryDistance"`
	PreferredSuppliers  []primitive.ObjectID    `json:"preferredSuppliers" bson:"preferredSuppliers"`
	Notifications       NotificationPreferences `json:"notifications" bson:"notifications"`
}

// UserStats thống kê hoạt động của người dùng, được cập nhật khi tham gia nhóm.
type UserStats struct {
	TotalOrders  int     `json:"totalOrders" bson:"totalOrders"`
	TotalSavings float64 `json:"totalSavings" bson:"totalSavings"`
	GroupsJoined int     `json:"groupsJoined" bson:"groupsJoined"`
	Rating       float64 `json:"rating" bson:"rating"`
	ReviewCount  int     `json:"reviewCount" bson:"reviewCount"`
}

// PurchaseRecord một lần mua trong lịch sử, dùng cho chấm điểm gợi ý.
// Danh sách chỉ được append, không sửa lại bản ghi cũ.
type PurchaseRecord struct {
	Product  string  `json:"product" bson:"product"`
	Category string  `json:"category" bson:"category"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
	Date     int64   `json:"date" bson:"date"`
}

// AIPreferences các cờ sở thích dùng khi sinh lý do gợi ý.
type AIPreferences struct {
	Organic        bool `json:"organic" bson:"organic"`
	FastDelivery   bool `json:"fastDelivery" bson:"fastDelivery"`
	BulkDiscount   bool `json:"bulkDiscount" bson:"bulkDiscount"`
	LocalSuppliers bool `json:"localSuppliers" bson:"localSuppliers"`
}

// UserAIProfile hồ sơ hành vi của người dùng cho engine gợi ý.
type UserAIProfile struct {
	PurchaseHistory []PurchaseRecord `json:"purchaseHistory" bson:"purchaseHistory"`
	Preferences     AIPreferences    `json:"preferences" bson:"preferences"`
	BehaviorScore   float64          `json:"behaviorScore" bson:"behaviorScore"`
	LastActivity    int64            `json:"lastActivity" bson:"lastActivity"`
}

// User định nghĩa mô hình người dùng.
// RefreshToken lưu refresh token hiện hành, mỗi lần refresh sẽ thay thế token cũ (rotation).
type User struct {
	_Relationships struct{}           `relationship:"collection:buy_groups,field:creatorId,message:Không thể xóa user vì user đang là người tạo của %d nhóm mua chung.|collection:buy_requests,field:userId,message:Không thể xóa user vì user có %d yêu cầu mua hàng."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Password       string             `json:"-" bson:"password,omitempty"`
	Role           string             `json:"role" bson:"role" default:"vendor"` // vendor | supplier | admin
	Profile        UserProfile        `json:"profile" bson:"profile"`
	Preferences    UserPreferences    `json:"preferences" bson:"preferences"`
	Stats          UserStats          `json:"stats" bson:"stats"`
	AIProfile      UserAIProfile      `json:"aiProfile" bson:"aiProfile"`
	RefreshToken   string             `json:"-" bson:"refreshToken,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
