package aisvc

import (
	"fmt"
	"math"
	"strings"
	"time"

	aidto "group_commerce/internal/api/ai/dto"
)

// Bảng giá cơ sở theo từ đầu tiên của tên sản phẩm (chữ thường).
var basePriceTable = map[string]float64{
	"rice":    50,
	"basmati": 65,
	"wheat":   35,
	"tomato":  30,
	"onion":   25,
	"potato":  20,
	"oil":     150,
	"dal":     80,
}

// Giá cơ sở khi sản phẩm không có trong bảng.
const defaultBasePrice = 40.0

// Độ tin cậy cố định của các kết quả dự đoán.
const predictionConfidence = 0.85

// PredictPrice dự đoán giá theo bậc số lượng và yếu tố mùa vụ.
// Giảm giá theo bậc: >50 giảm 15%, >20 giảm 10%, >10 giảm 5%.
func PredictPrice(productName string, category string, quantity float64, at time.Time) aidto.PricePrediction {
	basePrice := lookupBasePrice(productName)

	discount := 0.0
	switch {
	case quantity > 50:
		discount = 0.15
	case quantity > 20:
		discount = 0.10
	case quantity > 10:
		discount = 0.05
	}

	seasonal := seasonalFactor(category, at.Month())
	// Làm tròn 2 chữ số thập phân
	predicted := math.Round(basePrice*(1-discount)*seasonal*100) / 100

	return aidto.PricePrediction{
		ProductName:    productName,
		BasePrice:      basePrice,
		PredictedPrice: predicted,
		Discount:       discount * 100,
		SeasonalFactor: seasonal,
		Confidence:     predictionConfidence,
		Recommendations: []string{
			"Mua số lượng lớn hơn 50 để được mức giảm giá tốt nhất",
			"Tham gia nhóm mua chung để chia sẻ mức giá sỉ",
			fmt.Sprintf("Giá dự đoán dựa trên giá cơ sở %.0f mỗi đơn vị", basePrice),
		},
	}
}

// lookupBasePrice tra giá cơ sở theo từ đầu tiên của tên sản phẩm.
func lookupBasePrice(productName string) float64 {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(productName)))
	if len(fields) == 0 {
		return defaultBasePrice
	}
	if price, ok := basePriceTable[fields[0]]; ok {
		return price
	}
	return defaultBasePrice
}

// seasonalFactor trả về hệ số mùa vụ theo danh mục và tháng.
// Vegetables: cao điểm Apr-Jun (×1.2), còn lại ×0.9.
// Fruits: vào mùa Oct-Dec (×0.8), còn lại ×1.1.
func seasonalFactor(category string, month time.Month) float64 {
	switch category {
	case "Vegetables":
		if month >= time.April && month <= time.June {
			return 1.2
		}
		return 0.9
	case "Fruits":
		if month >= time.October && month <= time.December {
			return 0.8
		}
		return 1.1
	default:
		return 1.0
	}
}

// Bảng dự báo nhu cầu theo khung thời gian. Nội dung cố định,
// đóng vai trò placeholder cho model dự báo thật.
var demandForecastTable = map[string]aidto.DemandForecast{
	"7d":  {Demand: "high", Confidence: 0.8, Change: "+15%"},
	"30d": {Demand: "medium", Confidence: 0.7, Change: "+5%"},
	"90d": {Demand: "low", Confidence: 0.6, Change: "-10%"},
}

// Các yếu tố giải thích kèm theo mọi dự báo.
var demandForecastFactors = []string{
	"Nhu cầu tăng theo mùa lễ hội",
	"Nguồn cung thị trường địa phương hạn chế",
	"Thời tiết ảnh hưởng vận chuyển",
}

// ForecastDemand trả về dự báo nhu cầu theo khung thời gian 7d/30d/90d.
// Khung không hợp lệ rơi về mặc định 30d.
func ForecastDemand(timeframe string) aidto.DemandForecastResult {
	forecast, ok := demandForecastTable[timeframe]
	if !ok {
		timeframe = "30d"
		forecast = demandForecastTable[timeframe]
	}
	return aidto.DemandForecastResult{
		Timeframe: timeframe,
		Forecast:  forecast,
		Factors:   demandForecastFactors,
	}
}
