package aisvc

import (
	"testing"
	"time"

	authmodels "group_commerce/internal/api/auth/models"
	groupmodels "group_commerce/internal/api/group/models"
	requestmodels "group_commerce/internal/api/request/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestMatchGroupsFullScore kiểm tra trường hợp ghép đạt điểm tối đa:
// trùng tên sản phẩm (40) + còn đủ chỗ (30) + trong ngân sách (20) + vị trí (10) = 100.
func TestMatchGroupsFullScore(t *testing.T) {
	request := &requestmodels.Request{
		ProductName: "Basmati Rice",
		Category:    "Grains & Cereals",
		Quantity:    20,
		MaxPrice:    70,
	}
	group := groupmodels.Group{
		ID:              primitive.NewObjectID(),
		ProductName:     "Basmati Rice Premium",
		Category:        "Grains & Cereals",
		TargetQuantity:  100,
		CurrentQuantity: 40,
		PricePerUnit:    62,
		Savings:         5,
		Status:          groupmodels.GroupStatusActive,
	}

	matches := MatchGroups(request, []groupmodels.Group{group})
	if len(matches) != 1 {
		t.Fatalf("MatchGroups trả về %d kết quả, mong đợi 1", len(matches))
	}
	if matches[0].MatchScore != 100 {
		t.Errorf("MatchScore = %.0f, mong đợi 100", matches[0].MatchScore)
	}
	if matches[0].EstimatedSavings != 100 {
		t.Errorf("EstimatedSavings = %.0f, mong đợi 100 (savings 5 × quantity 20)", matches[0].EstimatedSavings)
	}
	if len(matches[0].Reasons) != 4 {
		t.Errorf("Số lý do = %d, mong đợi 4", len(matches[0].Reasons))
	}
}

// TestMatchGroupsCategoryOnly kiểm tra chỉ trùng danh mục ăn 20 điểm thay vì 40.
func TestMatchGroupsCategoryOnly(t *testing.T) {
	request := &requestmodels.Request{
		ProductName: "Jasmine Rice",
		Category:    "Grains & Cereals",
		Quantity:    10,
	}
	group := groupmodels.Group{
		ID:              primitive.NewObjectID(),
		ProductName:     "Wheat Flour",
		Category:        "Grains & Cereals",
		TargetQuantity:  100,
		CurrentQuantity: 0,
		PricePerUnit:    33,
		Status:          groupmodels.GroupStatusActive,
	}

	matches := MatchGroups(request, []groupmodels.Group{group})
	if len(matches) != 1 {
		t.Fatalf("MatchGroups trả về %d kết quả, mong đợi 1", len(matches))
	}
	// 20 (danh mục) + 30 (đủ chỗ) + 20 (không đặt maxPrice) + 10 (vị trí) = 80
	if matches[0].MatchScore != 80 {
		t.Errorf("MatchScore = %.0f, mong đợi 80", matches[0].MatchScore)
	}
}

// TestMatchGroupsDropsBelowThreshold kiểm tra nhóm dưới 50 điểm bị loại.
func TestMatchGroupsDropsBelowThreshold(t *testing.T) {
	request := &requestmodels.Request{
		ProductName: "Mango",
		Category:    "Fruits",
		Quantity:    500,
		MaxPrice:    10,
	}
	// Khác tên, khác danh mục, hết chỗ, vượt ngân sách: chỉ còn 10 điểm vị trí
	group := groupmodels.Group{
		ID:              primitive.NewObjectID(),
		ProductName:     "Cooking Oil",
		Category:        "Oil & Ghee",
		TargetQuantity:  100,
		CurrentQuantity: 100,
		PricePerUnit:    150,
		Status:          groupmodels.GroupStatusActive,
	}

	matches := MatchGroups(request, []groupmodels.Group{group})
	if len(matches) != 0 {
		t.Errorf("MatchGroups trả về %d kết quả, mong đợi 0 vì dưới ngưỡng 50 điểm", len(matches))
	}
}

// TestMatchGroupsSkipsInactive kiểm tra nhóm không active bị bỏ qua dù trùng khớp hoàn toàn.
func TestMatchGroupsSkipsInactive(t *testing.T) {
	request := &requestmodels.Request{
		ProductName: "Tomato",
		Category:    "Vegetables",
		Quantity:    5,
	}
	group := groupmodels.Group{
		ID:             primitive.NewObjectID(),
		ProductName:    "Tomato",
		Category:       "Vegetables",
		TargetQuantity: 50,
		Status:         groupmodels.GroupStatusCompleted,
	}

	matches := MatchGroups(request, []groupmodels.Group{group})
	if len(matches) != 0 {
		t.Errorf("MatchGroups phải bỏ qua nhóm %s, trả về %d kết quả", group.Status, len(matches))
	}
}

// TestRecommendGroupsFilterAndOrder kiểm tra lọc điểm > 30, sắp xếp giảm dần
// và phân loại ưu tiên theo ngưỡng 70/50.
func TestRecommendGroupsFilterAndOrder(t *testing.T) {
	user := &authmodels.User{}
	user.AIProfile.PurchaseHistory = []authmodels.PurchaseRecord{
		{Product: "Rice", Category: "Grains & Cereals", Quantity: 20, Price: 50},
	}

	strong := groupmodels.Group{
		ID:                   primitive.NewObjectID(),
		ProductName:          "Basmati Rice",
		Category:             "Grains & Cereals",
		Savings:              15,
		CompletionPercentage: 80,
		Status:               groupmodels.GroupStatusActive,
	}
	weak := groupmodels.Group{
		ID:          primitive.NewObjectID(),
		ProductName: "Cooking Oil",
		Category:    "Oil & Ghee",
		Status:      groupmodels.GroupStatusActive,
	}

	recs := RecommendGroups(user, []groupmodels.Group{weak, strong})
	if len(recs) == 0 {
		t.Fatal("RecommendGroups không trả về gợi ý nào")
	}
	if recs[0].Group.ProductName != "Basmati Rice" {
		t.Errorf("Gợi ý đầu tiên là %q, mong đợi nhóm điểm cao nhất %q", recs[0].Group.ProductName, "Basmati Rice")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("Gợi ý không được sắp xếp giảm dần: điểm %.1f đứng sau %.1f", recs[i].Score, recs[i-1].Score)
		}
	}
	for _, rec := range recs {
		if rec.Score <= 30 {
			t.Errorf("Gợi ý điểm %.1f lọt qua ngưỡng 30", rec.Score)
		}
		want := "low"
		if rec.Score > 70 {
			want = "high"
		} else if rec.Score > 50 {
			want = "medium"
		}
		if rec.Priority != want {
			t.Errorf("Priority của điểm %.1f = %q, mong đợi %q", rec.Score, rec.Priority, want)
		}
	}
}

// TestRecommendGroupsTopN kiểm tra giới hạn tối đa 5 gợi ý.
func TestRecommendGroupsTopN(t *testing.T) {
	user := &authmodels.User{}
	user.AIProfile.PurchaseHistory = []authmodels.PurchaseRecord{
		{Product: "Rice", Category: "Grains & Cereals"},
	}

	groups := make([]groupmodels.Group, 0, 8)
	for i := 0; i < 8; i++ {
		groups = append(groups, groupmodels.Group{
			ID:                   primitive.NewObjectID(),
			ProductName:          "Basmati Rice",
			Category:             "Grains & Cereals",
			Savings:              20,
			CompletionPercentage: 90,
			Status:               groupmodels.GroupStatusActive,
		})
	}

	recs := RecommendGroups(user, groups)
	if len(recs) != 5 {
		t.Errorf("RecommendGroups trả về %d gợi ý, mong đợi tối đa 5", len(recs))
	}
}

// TestRecommendGroupsEmptyInput kiểm tra không có candidate trả về slice rỗng, không nil.
func TestRecommendGroupsEmptyInput(t *testing.T) {
	recs := RecommendGroups(&authmodels.User{}, nil)
	if recs == nil {
		t.Fatal("RecommendGroups phải trả về slice rỗng thay vì nil")
	}
	if len(recs) != 0 {
		t.Errorf("RecommendGroups với input rỗng trả về %d gợi ý", len(recs))
	}
}

// TestPredictPriceDiscountTiers kiểm tra các bậc giảm giá theo số lượng.
func TestPredictPriceDiscountTiers(t *testing.T) {
	// Tháng 1, danh mục không có hệ số mùa vụ
	at := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		quantity     float64
		wantDiscount float64
		wantPrice    float64
	}{
		{quantity: 5, wantDiscount: 0, wantPrice: 65},
		{quantity: 15, wantDiscount: 5, wantPrice: 65 * 0.95},
		{quantity: 30, wantDiscount: 10, wantPrice: 65 * 0.90},
		{quantity: 100, wantDiscount: 15, wantPrice: 65 * 0.85},
	}
	for _, tt := range tests {
		got := PredictPrice("Basmati Rice", "Grains & Cereals", tt.quantity, at)
		if got.BasePrice != 65 {
			t.Errorf("BasePrice của basmati = %.0f, mong đợi 65", got.BasePrice)
		}
		if got.Discount != tt.wantDiscount {
			t.Errorf("Discount với quantity %.0f = %.0f%%, mong đợi %.0f%%", tt.quantity, got.Discount, tt.wantDiscount)
		}
		if got.PredictedPrice != tt.wantPrice {
			t.Errorf("PredictedPrice với quantity %.0f = %.2f, mong đợi %.2f", tt.quantity, got.PredictedPrice, tt.wantPrice)
		}
		if got.Confidence != 0.85 {
			t.Errorf("Confidence = %.2f, mong đợi 0.85", got.Confidence)
		}
	}
}

// TestPredictPriceRounding kiểm tra giá dự đoán được làm tròn 2 chữ số thập phân.
func TestPredictPriceRounding(t *testing.T) {
	// Tomato tháng 12: 30 × 0.9 (mùa vụ) × 0.95 (giảm 5%) = 25.65
	at := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	got := PredictPrice("Tomato", "Vegetables", 15, at)
	if got.PredictedPrice != 25.65 {
		t.Errorf("PredictedPrice = %v, mong đợi đúng 25.65 sau làm tròn", got.PredictedPrice)
	}
}

// TestPredictPriceSeasonalFactor kiểm tra hệ số mùa vụ theo danh mục và tháng.
func TestPredictPriceSeasonalFactor(t *testing.T) {
	tests := []struct {
		category string
		month    time.Month
		want     float64
	}{
		{category: "Vegetables", month: time.May, want: 1.2},
		{category: "Vegetables", month: time.December, want: 0.9},
		{category: "Fruits", month: time.November, want: 0.8},
		{category: "Fruits", month: time.March, want: 1.1},
		{category: "Grains & Cereals", month: time.May, want: 1.0},
	}
	for _, tt := range tests {
		at := time.Date(2024, tt.month, 10, 0, 0, 0, 0, time.UTC)
		got := PredictPrice("Tomato", tt.category, 1, at)
		if got.SeasonalFactor != tt.want {
			t.Errorf("SeasonalFactor của %s tháng %d = %.1f, mong đợi %.1f", tt.category, tt.month, got.SeasonalFactor, tt.want)
		}
	}
}

// TestPredictPriceUnknownProduct kiểm tra sản phẩm lạ rơi về giá cơ sở mặc định.
func TestPredictPriceUnknownProduct(t *testing.T) {
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := PredictPrice("Dragon Fruit Deluxe", "Unknown", 1, at)
	if got.BasePrice != 40 {
		t.Errorf("BasePrice của sản phẩm lạ = %.0f, mong đợi 40", got.BasePrice)
	}

	empty := PredictPrice("", "Unknown", 1, at)
	if empty.BasePrice != 40 {
		t.Errorf("BasePrice với tên rỗng = %.0f, mong đợi 40", empty.BasePrice)
	}
}

// TestForecastDemand kiểm tra nội dung dự báo theo khung và fallback về 30d.
func TestForecastDemand(t *testing.T) {
	tests := []struct {
		timeframe      string
		wantTimeframe  string
		wantDemand     string
		wantConfidence float64
		wantChange     string
	}{
		{timeframe: "7d", wantTimeframe: "7d", wantDemand: "high", wantConfidence: 0.8, wantChange: "+15%"},
		{timeframe: "30d", wantTimeframe: "30d", wantDemand: "medium", wantConfidence: 0.7, wantChange: "+5%"},
		{timeframe: "90d", wantTimeframe: "90d", wantDemand: "low", wantConfidence: 0.6, wantChange: "-10%"},
		{timeframe: "365d", wantTimeframe: "30d", wantDemand: "medium", wantConfidence: 0.7, wantChange: "+5%"},
		{timeframe: "", wantTimeframe: "30d", wantDemand: "medium", wantConfidence: 0.7, wantChange: "+5%"},
	}
	for _, tt := range tests {
		got := ForecastDemand(tt.timeframe)
		if got.Timeframe != tt.wantTimeframe {
			t.Errorf("Timeframe với input %q = %q, mong đợi %q", tt.timeframe, got.Timeframe, tt.wantTimeframe)
		}
		if got.Forecast.Demand != tt.wantDemand {
			t.Errorf("Demand với input %q = %q, mong đợi %q", tt.timeframe, got.Forecast.Demand, tt.wantDemand)
		}
		if got.Forecast.Confidence != tt.wantConfidence {
			t.Errorf("Confidence với input %q = %.1f, mong đợi %.1f", tt.timeframe, got.Forecast.Confidence, tt.wantConfidence)
		}
		if got.Forecast.Change != tt.wantChange {
			t.Errorf("Change với input %q = %q, mong đợi %q", tt.timeframe, got.Forecast.Change, tt.wantChange)
		}
		if len(got.Factors) == 0 {
			t.Errorf("ForecastDemand với input %q phải kèm danh sách yếu tố", tt.timeframe)
		}
	}
}

// TestRandomMetricsScorerRanges kiểm tra điểm sinh ra nằm trong các khoảng quy định.
func TestRandomMetricsScorerRanges(t *testing.T) {
	scorer := RandomMetricsScorer{}
	group := &groupmodels.Group{ProductName: "Rice"}
	for i := 0; i < 50; i++ {
		m := scorer.Score(group)
		if m.DemandScore < 60 || m.DemandScore > 100 {
			t.Fatalf("DemandScore = %.2f, ngoài khoảng [60, 100]", m.DemandScore)
		}
		if m.PriceOptimizationScore < 70 || m.PriceOptimizationScore > 100 {
			t.Fatalf("PriceOptimizationScore = %.2f, ngoài khoảng [70, 100]", m.PriceOptimizationScore)
		}
		if m.DeliveryEfficiencyScore < 75 || m.DeliveryEfficiencyScore > 100 {
			t.Fatalf("DeliveryEfficiencyScore = %.2f, ngoài khoảng [75, 100]", m.DeliveryEfficiencyScore)
		}
		if m.MemberCompatibilityScore < 80 || m.MemberCompatibilityScore > 100 {
			t.Fatalf("MemberCompatibilityScore = %.2f, ngoài khoảng [80, 100]", m.MemberCompatibilityScore)
		}
	}
}

// TestMetricOrDefault kiểm tra điểm chưa chấm rơi về mặc định 50.
func TestMetricOrDefault(t *testing.T) {
	if got := metricOrDefault(0); got != DefaultMetricScore {
		t.Errorf("metricOrDefault(0) = %.0f, mong đợi %.0f", got, DefaultMetricScore)
	}
	if got := metricOrDefault(-5); got != DefaultMetricScore {
		t.Errorf("metricOrDefault(-5) = %.0f, mong đợi %.0f", got, DefaultMetricScore)
	}
	if got := metricOrDefault(72.5); got != 72.5 {
		t.Errorf("metricOrDefault(72.5) = %.1f, mong đợi giữ nguyên 72.5", got)
	}
}
