// Package analyticsdto - các DTO cho domain analytics.
package analyticsdto

import (
	groupmodels "group_commerce/internal/api/group/models"
	requestmodels "group_commerce/internal/api/request/models"
)

// DashboardStats số liệu tổng hợp về hoạt động mua chung của user.
type DashboardStats struct {
	TotalSavings    float64 `json:"totalSavings"`
	ActiveGroups    int     `json:"activeGroups"`
	CompletedOrders int     `json:"completedOrders"`
	SuccessRate     int     `json:"successRate"` // phần trăm nhóm đã hoàn thành
}

// RecentActivity hoạt động gần đây: tối đa 5 nhóm và 5 yêu cầu mua.
type RecentActivity struct {
	Groups   []groupmodels.Group     `json:"groups"`
	Requests []requestmodels.Request `json:"requests"`
}

// MarketTrend xu hướng giá của một sản phẩm.
type MarketTrend struct {
	Product    string  `json:"product"`
	Trend      string  `json:"trend"` // up | down | stable
	Percentage float64 `json:"percentage"`
}

// AIInsights tóm tắt hồ sơ AI của user.
type AIInsights struct {
	Recommendations     int      `json:"recommendations"`
	BehaviorScore       float64  `json:"behaviorScore"`
	PreferredCategories []string `json:"preferredCategories"`
}

// Dashboard payload của GET /analytics/dashboard.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity RecentActivity `json:"recentActivity"`
	MarketTrends   []MarketTrend  `json:"marketTrends"`
	AIInsights     AIInsights     `json:"aiInsights"`
}

// PricePoint một điểm trên đường giá lịch sử.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// InsightForecast dự báo nhu cầu ngắn hạn.
type InsightForecast struct {
	NextWeek  string `json:"nextWeek"`
	NextMonth string `json:"nextMonth"`
	Seasonal  string `json:"seasonal"`
}

// SavingOpportunity một cơ hội tiết kiệm chi phí.
type SavingOpportunity struct {
	Product         string  `json:"product"`
	PotentialSaving float64 `json:"potentialSaving"`
	Reason          string  `json:"reason"`
}

// MarketInsights payload của GET /analytics/market-insights.
type MarketInsights struct {
	PriceHistory            []PricePoint        `json:"priceHistory"`
	DemandForecast          InsightForecast     `json:"demandForecast"`
	CostSavingOpportunities []SavingOpportunity `json:"costSavingOpportunities"`
}
