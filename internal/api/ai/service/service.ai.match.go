package aisvc

import (
	"fmt"
	"sort"
	"strings"

	groupmodels "group_commerce/internal/api/group/models"
	requestmodels "group_commerce/internal/api/request/models"
)

// Ngưỡng giữ kết quả ghép yêu cầu với nhóm.
const matchKeepThreshold = 50.0

// MatchGroups chấm điểm mức độ phù hợp giữa một yêu cầu mua và danh sách nhóm
// ứng viên (đã được lọc sẵn theo cùng danh mục và trạng thái active).
// Giữ các nhóm đạt điểm >= 50, sắp xếp giảm dần, kèm lý do tích luỹ theo từng
// tiêu chí và estimatedSavings = savings của nhóm × số lượng yêu cầu.
func MatchGroups(request *requestmodels.Request, candidates []groupmodels.Group) []requestmodels.MatchedGroup {
	matches := make([]requestmodels.MatchedGroup, 0)
	for _, group := range candidates {
		if group.Status != groupmodels.GroupStatusActive {
			continue
		}
		score, reasons := scoreGroupForRequest(request, &group)
		if score < matchKeepThreshold {
			continue
		}
		matches = append(matches, requestmodels.MatchedGroup{
			GroupID:          group.ID,
			MatchScore:       score,
			Reasons:          reasons,
			EstimatedSavings: group.Savings * request.Quantity,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// scoreGroupForRequest tính điểm ghép và lý do cho một cặp yêu cầu × nhóm.
func scoreGroupForRequest(request *requestmodels.Request, group *groupmodels.Group) (float64, []string) {
	score := 0.0
	reasons := make([]string, 0)

	// Tên sản phẩm chứa nhau (hai chiều, không phân biệt hoa thường) ăn điểm
	// cao hơn chỉ trùng danh mục
	requestProduct := strings.ToLower(request.ProductName)
	groupProduct := strings.ToLower(group.ProductName)
	if requestProduct != "" && (strings.Contains(groupProduct, requestProduct) || strings.Contains(requestProduct, groupProduct)) {
		score += 40
		reasons = append(reasons, "Trùng tên sản phẩm")
	} else if request.Category == group.Category {
		score += 20
		reasons = append(reasons, "Cùng danh mục hàng hóa")
	}

	// Sức chứa còn lại của nhóm
	remaining := group.TargetQuantity - group.CurrentQuantity
	if remaining >= request.Quantity {
		score += 30
		reasons = append(reasons, fmt.Sprintf("Nhóm còn đủ chỗ cho %.0f %s", request.Quantity, request.Unit))
	} else if remaining*1.2 >= request.Quantity {
		score += 15
		reasons = append(reasons, "Nhóm gần đủ chỗ cho số lượng yêu cầu")
	}

	// Ngân sách: không đặt maxPrice coi như chấp nhận mọi giá
	if request.MaxPrice <= 0 || group.PricePerUnit <= request.MaxPrice {
		score += 20
		reasons = append(reasons, "Giá nhóm nằm trong ngân sách")
	}

	// Vị trí luôn được cộng, chưa có tính khoảng cách thật
	score += 10
	reasons = append(reasons, "Khu vực giao hàng phù hợp")

	return score, reasons
}
