package requestsvc

import (
	"context"
	"time"

	aisvc "group_commerce/internal/api/ai/service"
	basesvc "group_commerce/internal/api/base/service"
	"group_commerce/internal/api/events"
	groupmodels "group_commerce/internal/api/group/models"
	models "group_commerce/internal/api/request/models"
	"group_commerce/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterSmartMatchSubscriber đăng ký worker smart match vào event bus.
// Mỗi khi có yêu cầu mua mới được insert, worker chờ một khoảng trễ rồi chạy
// ghép nhóm trong goroutine nền: fire-and-forget, không retry, lỗi chỉ ghi log.
// Gọi một lần lúc khởi động (xem cmd/server).
func RegisterSmartMatchSubscriber() error {
	service, err := NewRequestService()
	if err != nil {
		return err
	}
	delay := 2 * time.Second
	if global.ServerConfig != nil && global.ServerConfig.SmartMatchDelaySeconds > 0 {
		delay = time.Duration(global.ServerConfig.SmartMatchDelaySeconds) * time.Second
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Requests || e.Operation != events.OpInsert {
			return
		}
		request, ok := e.Document.(models.Request)
		if !ok {
			if ptr, okPtr := e.Document.(*models.Request); okPtr && ptr != nil {
				request = *ptr
			} else {
				return
			}
		}
		time.AfterFunc(delay, func() {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{"request_id": request.ID.Hex(), "panic": r}).Error("SmartMatch: Worker panic")
				}
			}()
			// Event context có thể đã hết hạn sau khoảng trễ, dùng context mới
			service.RunSmartMatch(context.Background(), request.ID)
		})
	})
	return nil
}

// RunSmartMatch ghép một yêu cầu mua với các nhóm active cùng danh mục.
// Có match thì ghi matchedGroups và chuyển status open → matched.
// Lỗi không được trả ra ngoài: worker nền không có nơi nhận lỗi.
func (s *RequestService) RunSmartMatch(ctx context.Context, requestID primitive.ObjectID) {
	request, err := s.BaseServiceMongoImpl.FindOneById(ctx, requestID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"request_id": requestID.Hex(), "error": err.Error()}).Warn("⚠️ SmartMatch: Không tìm thấy yêu cầu")
		return
	}
	if request.Status != models.RequestStatusOpen {
		return
	}

	// Ứng viên: nhóm active cùng danh mục
	candidates, err := s.groupCRUD.Find(ctx, bson.M{
		"category": request.Category,
		"status":   groupmodels.GroupStatusActive,
	}, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{"request_id": requestID.Hex(), "error": err.Error()}).Warn("⚠️ SmartMatch: Lỗi truy vấn nhóm ứng viên")
		return
	}

	matches := aisvc.MatchGroups(&request, candidates)
	set := map[string]interface{}{"matchedGroups": matches}
	if len(matches) > 0 {
		set["status"] = models.RequestStatusMatched
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, requestID, &basesvc.UpdateData{Set: set}); err != nil {
		logrus.WithFields(logrus.Fields{"request_id": requestID.Hex(), "error": err.Error()}).Warn("⚠️ SmartMatch: Lỗi ghi kết quả ghép")
		return
	}
	logrus.WithFields(logrus.Fields{"request_id": requestID.Hex(), "matches": len(matches)}).Info("SmartMatch: Hoàn tất ghép nhóm")
}
