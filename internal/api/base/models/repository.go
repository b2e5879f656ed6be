// Package models chứa các kiểu dùng chung cho layer CRUD generic:
// kết quả phân trang và kết quả đếm trả về qua các route find-with-pagination/count.
package models

// PaginateResult kết quả phân trang của một lần Find.
// Items là các document của trang hiện tại (nhóm mua chung, nhà cung cấp, ...).
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // số mục trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult kết quả đếm document theo filter.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}
