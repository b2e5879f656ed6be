package chatsvc

import (
	"fmt"
	"strings"

	aidto "group_commerce/internal/api/ai/dto"
	authmodels "group_commerce/internal/api/auth/models"
	models "group_commerce/internal/api/chat/models"
)

// Độ tin cậy cố định của classifier theo keyword.
const IntentConfidence = 0.85

// GreetingMessage tin nhắn chào khi tạo phiên mới.
const GreetingMessage = "Xin chào! Tôi là trợ lý mua chung của bạn. Tôi có thể giúp tìm nhóm mua chung, dự đoán giá và tối ưu đơn hàng. Bạn cần gì hôm nay?"

// intentRule một rule phân loại: chứa keyword nào thì ra intent đó.
type intentRule struct {
	keywords []string
	intent   string
}

// Thứ tự rule là một phần của hợp đồng: rule đứng trước thắng.
var intentRules = []intentRule{
	{keywords: []string{"price", "cost", "save"}, intent: models.IntentPriceInquiry},
	{keywords: []string{"group", "join"}, intent: models.IntentGroupInquiry},
	{keywords: []string{"delivery", "when"}, intent: models.IntentDeliveryInquiry},
	{keywords: []string{"supplier", "vendor"}, intent: models.IntentSupplierInquiry},
	{keywords: []string{"recommend", "suggest"}, intent: models.IntentRecommendationRequest},
}

// ClassifyIntent phân loại intent của tin nhắn bằng substring matching
// (không phân biệt hoa thường). Không khớp rule nào thì trả về general.
func ClassifyIntent(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return models.IntentGeneral
}

// ChatAggregates các số liệu tổng hợp mà service điều phối cung cấp cho
// generator; generator không tự truy cập storage.
type ChatAggregates struct {
	ActiveGroups      int64
	UserGroups        int64
	VerifiedSuppliers int64
	TopRecommendation *aidto.GroupRecommendation
}

// GenerateResponse sinh nội dung trả lời cho một intent.
// Mỗi intent có đúng một generator.
func GenerateResponse(intent string, user *authmodels.User, agg *ChatAggregates) string {
	switch intent {
	case models.IntentPriceInquiry:
		return priceResponse(user)
	case models.IntentGroupInquiry:
		return groupResponse(agg)
	case models.IntentDeliveryInquiry:
		return deliveryResponse()
	case models.IntentSupplierInquiry:
		return supplierResponse(agg)
	case models.IntentRecommendationRequest:
		return recommendationResponse(agg)
	default:
		return "Tôi có thể giúp bạn về nhóm mua chung, dự đoán giá, thông tin giao hàng và nhà cung cấp. Bạn muốn biết thêm về điều gì?"
	}
}

// priceResponse trả lời hỏi giá, neo theo lần mua gần nhất của user.
func priceResponse(user *authmodels.User) string {
	history := user.AIProfile.PurchaseHistory
	if len(history) > 0 {
		recent := history[len(history)-1]
		return fmt.Sprintf("Dựa trên lần mua %s gần nhất của bạn, mua chung có thể tiết kiệm 15-25%%. Phân tích thị trường cho thấy đơn số lượng lớn tiết kiệm trung bình 8-15 mỗi kg.", recent.Product)
	}
	return "Mua chung thường tiết kiệm 15-30% so với mua lẻ. Tôi có thể phân tích sản phẩm cụ thể để ước tính mức tiết kiệm chính xác cho bạn."
}

// groupResponse trả lời hỏi về nhóm, nhúng hai số liệu tổng hợp.
func groupResponse(agg *ChatAggregates) string {
	return fmt.Sprintf("Hiện có %d nhóm đang hoạt động. Bạn đang tham gia %d nhóm. Bạn có muốn xem chi tiết nhóm nào không?", agg.ActiveGroups, agg.UserGroups)
}

func deliveryResponse() string {
	return "Hệ thống tối ưu tuyến giao hàng tự động. Thời gian giao trung bình 24-48 giờ cho đơn nhóm. Đơn trên 500 được miễn phí giao hàng, và bạn có thể theo dõi realtime khi nhóm đạt đủ số lượng."
}

// supplierResponse trả lời hỏi về nhà cung cấp, nhúng số nhà cung cấp đã xác minh.
func supplierResponse(agg *ChatAggregates) string {
	return fmt.Sprintf("Chúng tôi làm việc với %d+ nhà cung cấp đã xác minh trong khu vực của bạn. Tất cả đều được đánh giá 4 sao trở lên kèm cam kết chất lượng. Bạn cần thông tin nhà cung cấp cho sản phẩm nào?", agg.VerifiedSuppliers)
}

// recommendationResponse dùng gợi ý cá nhân hóa cao nhất nếu có.
func recommendationResponse(agg *ChatAggregates) string {
	if agg.TopRecommendation != nil {
		top := agg.TopRecommendation
		return fmt.Sprintf("Dựa trên hồ sơ của bạn, tôi gợi ý tham gia nhóm mua %s. Bạn có thể tiết kiệm %.0f cho đơn 10%s. Nhóm đã đạt %d%% và phù hợp với lịch sử mua của bạn.",
			top.Group.ProductName, top.Group.Savings*10, top.Group.Unit, top.Group.CompletionPercentage)
	}
	return "Tôi đang phân tích các cơ hội hiện có theo sở thích của bạn. Quay lại sau ít phút để nhận gợi ý cá nhân hóa nhé!"
}
