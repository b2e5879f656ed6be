package aisvc

import (
	"fmt"
	"sort"
	"strings"

	aidto "group_commerce/internal/api/ai/dto"
	authmodels "group_commerce/internal/api/auth/models"
	groupmodels "group_commerce/internal/api/group/models"
)

// Ngưỡng của engine gợi ý.
const (
	recommendKeepThreshold = 30.0 // chỉ giữ nhóm có điểm > 30
	recommendTopN          = 5    // tối đa 5 gợi ý
	priorityHighThreshold  = 70.0
	priorityMediumThreshold = 50.0
)

// RecommendGroups chấm điểm từng nhóm theo hồ sơ người dùng và trả về tối đa 5
// gợi ý điểm cao nhất (điểm > 30), sắp xếp giảm dần. Nhóm bằng điểm giữ nguyên
// thứ tự duyệt (stable sort). Không có candidate thì trả về slice rỗng.
func RecommendGroups(user *authmodels.User, groups []groupmodels.Group) []aidto.GroupRecommendation {
	recommendations := make([]aidto.GroupRecommendation, 0)
	for _, group := range groups {
		score := scoreGroupForUser(user, &group)
		if score <= recommendKeepThreshold {
			continue
		}
		recommendations = append(recommendations, aidto.GroupRecommendation{
			Group:    group,
			Score:    score,
			Priority: priorityForScore(score),
			Reasons:  recommendationReasons(user, &group),
		})
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > recommendTopN {
		recommendations = recommendations[:recommendTopN]
	}
	return recommendations
}

// scoreGroupForUser tính điểm gợi ý của một nhóm cho một người dùng.
func scoreGroupForUser(user *authmodels.User, group *groupmodels.Group) float64 {
	score := 0.0

	// Tần suất danh mục trong lịch sử mua
	categoryFrequency := 0
	for _, record := range user.AIProfile.PurchaseHistory {
		if record.Category == group.Category {
			categoryFrequency++
		}
	}
	score += 10 * float64(categoryFrequency)

	// Mức tiết kiệm trên mỗi đơn vị
	if group.Savings > 0 {
		score += 2 * group.Savings
	}

	// Nhóm càng gần đầy càng đáng tham gia
	score += 0.5 * float64(group.CompletionPercentage)

	// Có địa chỉ hai phía là đủ, không tính khoảng cách thật
	if hasUserAddress(user) && group.DeliveryDetails.Location.Address != "" {
		score += 20
	}

	score += 0.3 * metricOrDefault(group.AIMetrics.DemandScore)
	score += 0.3 * metricOrDefault(group.AIMetrics.PriceOptimizationScore)
	return score
}

// priorityForScore phân loại ưu tiên theo điểm.
func priorityForScore(score float64) string {
	switch {
	case score > priorityHighThreshold:
		return "high"
	case score > priorityMediumThreshold:
		return "medium"
	default:
		return "low"
	}
}

// recommendationReasons sinh danh sách lý do gợi ý.
// Lưu ý: dùng chung ngưỡng với phần chấm điểm nhưng chạy độc lập,
// nên lý do không đảm bảo khớp từng điểm cộng.
func recommendationReasons(user *authmodels.User, group *groupmodels.Group) []string {
	reasons := make([]string, 0)
	if group.Savings > 10 {
		reasons = append(reasons, fmt.Sprintf("Tiết kiệm %.0f mỗi %s so với giá thị trường", group.Savings, group.Unit))
	}
	if group.CompletionPercentage > 70 {
		reasons = append(reasons, "Nhóm sắp đủ số lượng, tham gia ngay để không bỏ lỡ")
	}
	if matchesPurchaseHistory(user, group) {
		reasons = append(reasons, "Phù hợp với lịch sử mua hàng của bạn")
	}
	if user.AIProfile.Preferences.BulkDiscount {
		reasons = append(reasons, "Bạn thích mua số lượng lớn để được giảm giá")
	}
	return reasons
}

// matchesPurchaseHistory kiểm tra nhóm có trùng với lịch sử mua không,
// theo substring tên sản phẩm hoặc trùng danh mục.
func matchesPurchaseHistory(user *authmodels.User, group *groupmodels.Group) bool {
	productLower := strings.ToLower(group.ProductName)
	for _, record := range user.AIProfile.PurchaseHistory {
		recordLower := strings.ToLower(record.Product)
		if recordLower != "" && (strings.Contains(productLower, recordLower) || strings.Contains(recordLower, productLower)) {
			return true
		}
		if record.Category == group.Category {
			return true
		}
	}
	return false
}

// hasUserAddress kiểm tra user đã khai địa chỉ kinh doanh chưa.
func hasUserAddress(user *authmodels.User) bool {
	addr := user.Profile.Address
	return addr.Street != "" || addr.City != "" || addr.State != "" || addr.Pincode != ""
}
