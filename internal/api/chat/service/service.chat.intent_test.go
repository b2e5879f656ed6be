package chatsvc

import (
	"strings"
	"testing"

	aidto "group_commerce/internal/api/ai/dto"
	authmodels "group_commerce/internal/api/auth/models"
	models "group_commerce/internal/api/chat/models"
	groupmodels "group_commerce/internal/api/group/models"
)

// TestClassifyIntent kiểm tra phân loại intent theo keyword, không phân biệt hoa thường.
func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{message: "What is the price of rice?", want: models.IntentPriceInquiry},
		{message: "HOW MUCH DOES IT COST", want: models.IntentPriceInquiry},
		{message: "I want to join a group", want: models.IntentGroupInquiry},
		{message: "When will my order arrive?", want: models.IntentDeliveryInquiry},
		{message: "Which supplier do you use?", want: models.IntentSupplierInquiry},
		{message: "Can you recommend something?", want: models.IntentRecommendationRequest},
		{message: "suggest a good deal", want: models.IntentRecommendationRequest},
		{message: "Xin chào", want: models.IntentGeneral},
		{message: "", want: models.IntentGeneral},
	}
	for _, tt := range tests {
		if got := ClassifyIntent(tt.message); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %q, mong đợi %q", tt.message, got, tt.want)
		}
	}
}

// TestClassifyIntentRuleOrder kiểm tra rule đứng trước thắng khi tin nhắn
// khớp nhiều rule cùng lúc.
func TestClassifyIntentRuleOrder(t *testing.T) {
	// "save" (price) và "join"/"group" (group) cùng xuất hiện: price thắng
	got := ClassifyIntent("how much can I save if I join this group?")
	if got != models.IntentPriceInquiry {
		t.Errorf("ClassifyIntent với tin nhắn đa rule = %q, mong đợi %q vì rule giá đứng trước", got, models.IntentPriceInquiry)
	}

	// "group" (group) và "delivery" (delivery): group thắng
	got = ClassifyIntent("group delivery schedule")
	if got != models.IntentGroupInquiry {
		t.Errorf("ClassifyIntent(%q) = %q, mong đợi %q", "group delivery schedule", got, models.IntentGroupInquiry)
	}
}

// TestGenerateResponsePriceWithHistory kiểm tra câu trả lời giá neo theo lần mua gần nhất.
func TestGenerateResponsePriceWithHistory(t *testing.T) {
	user := &authmodels.User{}
	user.AIProfile.PurchaseHistory = []authmodels.PurchaseRecord{
		{Product: "Wheat"},
		{Product: "Basmati Rice"},
	}

	got := GenerateResponse(models.IntentPriceInquiry, user, &ChatAggregates{})
	if !strings.Contains(got, "Basmati Rice") {
		t.Errorf("Câu trả lời giá phải nhắc tới lần mua gần nhất %q, nhận được: %q", "Basmati Rice", got)
	}
	if !strings.Contains(got, "15-25%") {
		t.Errorf("Câu trả lời giá với lịch sử mua phải nêu mức 15-25%%, nhận được: %q", got)
	}
}

// TestGenerateResponsePriceWithoutHistory kiểm tra fallback khi user chưa có lịch sử mua.
func TestGenerateResponsePriceWithoutHistory(t *testing.T) {
	got := GenerateResponse(models.IntentPriceInquiry, &authmodels.User{}, &ChatAggregates{})
	if !strings.Contains(got, "15-30%") {
		t.Errorf("Câu trả lời giá không có lịch sử phải nêu mức 15-30%%, nhận được: %q", got)
	}
}

// TestGenerateResponseGroup kiểm tra số liệu tổng hợp được nhúng vào câu trả lời nhóm.
func TestGenerateResponseGroup(t *testing.T) {
	agg := &ChatAggregates{ActiveGroups: 12, UserGroups: 3}
	got := GenerateResponse(models.IntentGroupInquiry, &authmodels.User{}, agg)
	if !strings.Contains(got, "12 nhóm đang hoạt động") {
		t.Errorf("Câu trả lời nhóm phải nêu 12 nhóm đang hoạt động, nhận được: %q", got)
	}
	if !strings.Contains(got, "tham gia 3 nhóm") {
		t.Errorf("Câu trả lời nhóm phải nêu user đang tham gia 3 nhóm, nhận được: %q", got)
	}
}

// TestGenerateResponseSupplier kiểm tra số nhà cung cấp đã xác minh.
func TestGenerateResponseSupplier(t *testing.T) {
	agg := &ChatAggregates{VerifiedSuppliers: 25}
	got := GenerateResponse(models.IntentSupplierInquiry, &authmodels.User{}, agg)
	if !strings.Contains(got, "25+") {
		t.Errorf("Câu trả lời nhà cung cấp phải nêu 25+, nhận được: %q", got)
	}
}

// TestGenerateResponseRecommendation kiểm tra gợi ý cao nhất được dùng khi có.
func TestGenerateResponseRecommendation(t *testing.T) {
	agg := &ChatAggregates{
		TopRecommendation: &aidto.GroupRecommendation{
			Group: groupmodels.Group{
				ProductName:          "Basmati Rice",
				Savings:              5,
				Unit:                 "kg",
				CompletionPercentage: 60,
			},
			Score: 85,
		},
	}
	got := GenerateResponse(models.IntentRecommendationRequest, &authmodels.User{}, agg)
	if !strings.Contains(got, "Basmati Rice") {
		t.Errorf("Câu gợi ý phải nêu tên sản phẩm, nhận được: %q", got)
	}
	if !strings.Contains(got, "tiết kiệm 50") {
		t.Errorf("Câu gợi ý phải nêu mức tiết kiệm 50 (savings 5 × 10), nhận được: %q", got)
	}
	if !strings.Contains(got, "60%") {
		t.Errorf("Câu gợi ý phải nêu mức hoàn thành 60%%, nhận được: %q", got)
	}
}

// TestGenerateResponseRecommendationEmpty kiểm tra fallback khi chưa có gợi ý.
func TestGenerateResponseRecommendationEmpty(t *testing.T) {
	got := GenerateResponse(models.IntentRecommendationRequest, &authmodels.User{}, &ChatAggregates{})
	if !strings.Contains(got, "Quay lại sau") {
		t.Errorf("Câu gợi ý khi chưa có dữ liệu phải là fallback, nhận được: %q", got)
	}
}

// TestGenerateResponseGeneral kiểm tra intent không xác định trả về câu trả lời chung.
func TestGenerateResponseGeneral(t *testing.T) {
	got := GenerateResponse(models.IntentGeneral, &authmodels.User{}, &ChatAggregates{})
	if got == "" {
		t.Error("Câu trả lời chung không được rỗng")
	}
	other := GenerateResponse("unknown_intent", &authmodels.User{}, &ChatAggregates{})
	if other != got {
		t.Error("Intent lạ phải rơi về cùng câu trả lời chung")
	}
}
