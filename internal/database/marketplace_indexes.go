// Package database - Index bổ sung cho marketplace (compound, nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"group_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMarketplaceAdditionalIndexes tạo các index bổ sung cho marketplace.
// Gọi sau CreateIndexes cho từng collection.
func CreateMarketplaceAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// buy_groups: (status, category) — lọc danh sách nhóm đang mở theo danh mục
	buyGroups := db.Collection(global.MongoDB_ColNames.Groups)
	if _, err := buyGroups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetName("buy_group_status_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// buy_groups: (status, deadline) — lọc nhóm mở sắp hết hạn
	if _, err := buyGroups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "deadline", Value: 1},
		},
		Options: options.Index().SetName("buy_group_status_deadline"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// buy_groups: members.userId multikey — kiểm tra thành viên khi join/leave
	if _, err := buyGroups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "members.userId", Value: 1},
		},
		Options: options.Index().SetName("buy_group_member_user").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// buy_requests: (userId, status) — danh sách yêu cầu của người dùng
	buyRequests := db.Collection(global.MongoDB_ColNames.Requests)
	if _, err := buyRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("buy_request_user_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// suppliers: (categories, location) multikey — gợi ý nhà cung cấp theo danh mục
	suppliers := db.Collection(global.MongoDB_ColNames.Suppliers)
	if _, err := suppliers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categories", Value: 1},
			{Key: "location", Value: 1},
		},
		Options: options.Index().SetName("supplier_categories_location").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
