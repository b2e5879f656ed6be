// Package requestsvc - service yêu cầu mua hàng (Request).
package requestsvc

import (
	"context"
	"fmt"

	aisvc "group_commerce/internal/api/ai/service"
	authmodels "group_commerce/internal/api/auth/models"
	basesvc "group_commerce/internal/api/base/service"
	groupmodels "group_commerce/internal/api/group/models"
	requestdto "group_commerce/internal/api/request/dto"
	models "group_commerce/internal/api/request/models"
	"group_commerce/internal/common"
	"group_commerce/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RequestService là cấu trúc chứa các phương thức liên quan đến yêu cầu mua hàng
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[models.Request]
	userCRUD  *basesvc.BaseServiceMongoImpl[authmodels.User]
	groupCRUD *basesvc.BaseServiceMongoImpl[groupmodels.Group]
}

// NewRequestService tạo mới RequestService
func NewRequestService() (*RequestService, error) {
	requestCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Requests)
	if !exist {
		return nil, fmt.Errorf("failed to get requests collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	groupCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Groups)
	if !exist {
		return nil, fmt.Errorf("failed to get groups collection: %v", common.ErrNotFound)
	}
	return &RequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Request](requestCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		groupCRUD:            basesvc.NewBaseServiceMongo[groupmodels.Group](groupCollection),
	}, nil
}

// CreateRequest tạo yêu cầu mua hàng mới kèm gợi ý AI.
// Smart match chạy nền sau đó (xem service.request.match.go), không chặn response.
func (s *RequestService) CreateRequest(ctx context.Context, userID primitive.ObjectID, input *requestdto.RequestCreateInput) (*models.Request, error) {
	unit := input.Unit
	if unit == "" {
		unit = "kg"
	}
	urgency := input.Urgency
	if urgency == "" {
		urgency = "medium"
	}

	request := models.Request{
		UserID:           userID,
		ProductName:      input.ProductName,
		Category:         input.Category,
		Quantity:         input.Quantity,
		Unit:             unit,
		ExpectedDelivery: input.ExpectedDelivery,
		MaxPrice:         input.MaxPrice,
		Description:      input.Description,
		Urgency:          urgency,
		Location:         models.RequestLocation{Address: input.Address},
		Status:           models.RequestStatusOpen,
		MatchedGroups:    []models.MatchedGroup{},
		Responses:        []models.RequestResponse{},
	}

	// Gợi ý AI cần hồ sơ người dùng; thiếu user thì vẫn tạo yêu cầu không kèm gợi ý
	if user, err := s.userCRUD.FindOneById(ctx, userID); err == nil {
		request.AISuggestions = aisvc.BuildRequestSuggestions(&user, &request)
	} else {
		request.AISuggestions = []models.AISuggestion{}
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ CreateRequest: Không lấy được user cho phần gợi ý")
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"request_id": created.ID.Hex(), "product": created.ProductName}).Info("CreateRequest: Tạo yêu cầu mua hàng thành công")
	return &created, nil
}

// ListMyRequests trả về các yêu cầu của người gọi, mới nhất trước.
func (s *RequestService) ListMyRequests(ctx context.Context, userID primitive.ObjectID) ([]models.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"userId": userID}, opts)
}
