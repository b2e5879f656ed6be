// Package aisvc - engine chấm điểm cho nhóm mua chung, yêu cầu mua và gợi ý.
// Toàn bộ là hàm thuần: không truy cập storage, không trả lỗi, thiếu dữ liệu
// thì rơi về giá trị mặc định.
package aisvc

import (
	"math/rand"

	groupmodels "group_commerce/internal/api/group/models"
)

// Điểm mặc định khi aiMetrics của nhóm chưa được chấm.
const DefaultMetricScore = 50.0

// MetricsScorer sinh bộ điểm AI cho nhóm mua chung lúc tạo.
// Cho phép thay implementation trong test hoặc khi có model chấm điểm thật.
type MetricsScorer interface {
	Score(group *groupmodels.Group) groupmodels.GroupAIMetrics
}

// RandomMetricsScorer là scorer mặc định: rút đều trong từng khoảng.
// Khoảng giá trị là phần hợp đồng, bản thân con số không mang tín hiệu:
// demand 60-100, price 70-100, delivery 75-100, compatibility 80-100.
type RandomMetricsScorer struct{}

// Score sinh bộ điểm ngẫu nhiên trong các khoảng quy định.
func (RandomMetricsScorer) Score(group *groupmodels.Group) groupmodels.GroupAIMetrics {
	return groupmodels.GroupAIMetrics{
		DemandScore:              60 + rand.Float64()*40,
		PriceOptimizationScore:   70 + rand.Float64()*30,
		DeliveryEfficiencyScore:  75 + rand.Float64()*25,
		MemberCompatibilityScore: 80 + rand.Float64()*20,
	}
}

// metricOrDefault trả về điểm đã chấm, hoặc DefaultMetricScore khi nhóm chưa có điểm.
func metricOrDefault(v float64) float64 {
	if v <= 0 {
		return DefaultMetricScore
	}
	return v
}
