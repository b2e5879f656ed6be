package aisvc

import (
	"fmt"
	"strings"
	"time"

	authmodels "group_commerce/internal/api/auth/models"
	requestmodels "group_commerce/internal/api/request/models"
)

// BuildRequestSuggestions sinh các gợi ý AI gắn vào yêu cầu mua lúc tạo.
// Ba rule: giá dự đoán thấp hơn ngân sách, nhu cầu tuần tới đang tăng,
// và gợi ý hàng organic theo sở thích người dùng. Kết quả xếp theo độ ưu tiên.
func BuildRequestSuggestions(user *authmodels.User, request *requestmodels.Request) []requestmodels.AISuggestion {
	suggestions := make([]requestmodels.AISuggestion, 0)

	// Nhu cầu tuần tới ở mức cao thì nên chốt đơn sớm
	forecast := ForecastDemand("7d")
	if forecast.Forecast.Demand == "high" {
		suggestions = append(suggestions, requestmodels.AISuggestion{
			Type:     requestmodels.SuggestionTiming,
			Message:  "Nhu cầu dự kiến tăng cao trong tuần tới. Nên đặt hàng sớm để tránh giá lên.",
			Data:     map[string]interface{}{"urgency": "high"},
			Priority: "high",
		})
	}

	// Giá dự đoán thấp hơn ngân sách
	if request.MaxPrice > 0 {
		prediction := PredictPrice(request.ProductName, request.Category, request.Quantity, time.Now())
		if prediction.PredictedPrice < request.MaxPrice {
			saving := request.MaxPrice - prediction.PredictedPrice
			suggestions = append(suggestions, requestmodels.AISuggestion{
				Type:     requestmodels.SuggestionPriceOptimization,
				Message:  fmt.Sprintf("Giá thị trường hiện tại (%.0f/%s) thấp hơn ngân sách của bạn %.0f.", prediction.PredictedPrice, request.Unit, saving),
				Data:     map[string]interface{}{"savings": saving},
				Priority: "medium",
			})
		}
	}

	// Gợi ý hàng organic theo sở thích
	if user.AIProfile.Preferences.Organic && !strings.Contains(strings.ToLower(request.ProductName), "organic") {
		suggestions = append(suggestions, requestmodels.AISuggestion{
			Type:     requestmodels.SuggestionAlternative,
			Message:  fmt.Sprintf("Cân nhắc %s organic - giá chỉ nhỉnh hơn một chút nhưng đúng sở thích của bạn.", request.ProductName),
			Data:     map[string]interface{}{"alternative": "Organic " + request.ProductName},
			Priority: "low",
		})
	}

	return suggestions
}
