// Package groupsvc - service nhóm mua chung (Group).
package groupsvc

import (
	"context"
	"fmt"
	"math"
	"time"

	aidto "group_commerce/internal/api/ai/dto"
	aisvc "group_commerce/internal/api/ai/service"
	authmodels "group_commerce/internal/api/auth/models"
	basesvc "group_commerce/internal/api/base/service"
	groupdto "group_commerce/internal/api/group/dto"
	models "group_commerce/internal/api/group/models"
	"group_commerce/internal/common"
	"group_commerce/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Thời gian sống mặc định của một nhóm mua chung kể từ lúc tạo.
const groupLifetime = 7 * 24 * time.Hour

// GroupService là cấu trúc chứa các phương thức liên quan đến nhóm mua chung
type GroupService struct {
	*basesvc.BaseServiceMongoImpl[models.Group]
	userCRUD *basesvc.BaseServiceMongoImpl[authmodels.User]
	scorer   aisvc.MetricsScorer
}

// NewGroupService tạo mới GroupService với scorer mặc định.
func NewGroupService() (*GroupService, error) {
	groupCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Groups)
	if !exist {
		return nil, fmt.Errorf("failed to get groups collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &GroupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Group](groupCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		scorer:               aisvc.RandomMetricsScorer{},
	}, nil
}

// SetMetricsScorer thay scorer mặc định, dùng trong test.
func (s *GroupService) SetMetricsScorer(scorer aisvc.MetricsScorer) {
	s.scorer = scorer
}

// CreateGroup tạo nhóm mua chung mới.
// Savings = marketPrice - pricePerUnit; title sinh theo dạng "<sản phẩm> - <mục tiêu><đơn vị>";
// điểm AI do MetricsScorer chấm; người tạo được cộng stats.groupsJoined.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID primitive.ObjectID, input *groupdto.GroupCreateInput) (*models.Group, error) {
	unit := input.Unit
	if unit == "" {
		unit = "kg"
	}

	group := models.Group{
		Title:           fmt.Sprintf("%s - %g%s", input.ProductName, input.TargetQuantity, unit),
		ProductName:     input.ProductName,
		Category:        input.Category,
		TargetQuantity:  input.TargetQuantity,
		CurrentQuantity: 0,
		Unit:            unit,
		PricePerUnit:    input.PricePerUnit,
		MarketPrice:     input.MarketPrice,
		Savings:         input.MarketPrice - input.PricePerUnit,
		CreatorID:       creatorID,
		Members:         []models.GroupMember{},
		DeliveryDetails: models.DeliveryDetails{
			ExpectedDate: input.DeliveryDate,
			Location:     models.DeliveryLocation{Address: input.DeliveryAddress},
			DeliveryType: input.DeliveryType,
		},
		Status:    models.GroupStatusActive,
		ExpiresAt: time.Now().Add(groupLifetime).UnixMilli(),
	}
	group.AIMetrics = s.scorer.Score(&group)

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, group)
	if err != nil {
		return nil, err
	}

	// Người tạo được tính là đã tham gia một nhóm
	if err := s.bumpCreatorStats(ctx, creatorID); err != nil {
		logrus.WithFields(logrus.Fields{"group_id": created.ID.Hex(), "error": err.Error()}).Warn("⚠️ CreateGroup: Không cập nhật được stats người tạo")
	}

	logrus.WithFields(logrus.Fields{"group_id": created.ID.Hex(), "product": created.ProductName}).Info("CreateGroup: Tạo nhóm mua chung thành công")
	return &created, nil
}

// bumpCreatorStats cộng groupsJoined cho người tạo nhóm (read-modify-write).
func (s *GroupService) bumpCreatorStats(ctx context.Context, creatorID primitive.ObjectID) error {
	user, err := s.userCRUD.FindOneById(ctx, creatorID)
	if err != nil {
		return err
	}
	_, err = s.userCRUD.UpdateById(ctx, creatorID, &basesvc.UpdateData{
		Set: map[string]interface{}{"stats.groupsJoined": user.Stats.GroupsJoined + 1},
	})
	return err
}

// ListGroups trả về danh sách nhóm theo filter kèm gợi ý AI cho người gọi.
// Mặc định chỉ lấy nhóm active, sắp xếp mới nhất trước, phân trang page/limit (mặc định 1/10).
func (s *GroupService) ListGroups(ctx context.Context, userID primitive.ObjectID, query *groupdto.GroupListQuery) (*groupdto.GroupListResult, error) {
	filter := bson.M{"status": models.GroupStatusActive}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Search != "" {
		filter["$or"] = []bson.M{
			{"productName": bson.M{"$regex": query.Search, "$options": "i"}},
			{"title": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	groups, err := s.BaseServiceMongoImpl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	total, err := s.BaseServiceMongoImpl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := (total + limit - 1) / limit

	// Gợi ý AI dựa trên hồ sơ người gọi; lỗi lấy user không làm fail cả danh sách
	result := &groupdto.GroupListResult{
		Groups:          groups,
		Recommendations: []aidto.GroupRecommendation{},
		Pagination:      groupdto.PaginationInfo{CurrentPage: page, TotalPages: totalPages},
	}
	if user, userErr := s.userCRUD.FindOneById(ctx, userID); userErr == nil {
		result.Recommendations = aisvc.RecommendGroups(&user, groups)
	} else {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": userErr.Error()}).Warn("⚠️ ListGroups: Không lấy được user cho phần gợi ý")
	}
	return result, nil
}

// JoinGroup tham gia nhóm mua chung.
// Từ chối khi nhóm không còn active, user đã có membership record (kể cả đã rời),
// hoặc số lượng vượt mục tiêu. Thành công thì cập nhật lại nhóm, cộng stats và
// append lịch sử mua của user.
func (s *GroupService) JoinGroup(ctx context.Context, groupID primitive.ObjectID, userID primitive.ObjectID, quantity float64) (*groupdto.GroupJoinResult, error) {
	group, err := s.BaseServiceMongoImpl.FindOneById(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := checkJoinGuards(&group, userID, quantity); err != nil {
		return nil, err
	}

	members := append(group.Members, models.GroupMember{
		UserID:         userID,
		QuantityNeeded: quantity,
		JoinedAt:       time.Now().UnixMilli(),
		Status:         models.MemberStatusActive,
	})
	newQuantity := group.CurrentQuantity + quantity
	completion := completionPercentage(newQuantity, group.TargetQuantity)

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, groupID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"members":              members,
			"currentQuantity":      newQuantity,
			"completionPercentage": completion,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.recordJoinForUser(ctx, userID, &updated, quantity); err != nil {
		logrus.WithFields(logrus.Fields{"group_id": groupID.Hex(), "user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ JoinGroup: Không cập nhật được stats người tham gia")
	}

	return &groupdto.GroupJoinResult{
		Group:   &updated,
		Savings: updated.Savings * quantity,
	}, nil
}

// recordJoinForUser cộng stats và append lịch sử mua khi user tham gia nhóm.
func (s *GroupService) recordJoinForUser(ctx context.Context, userID primitive.ObjectID, group *models.Group, quantity float64) error {
	user, err := s.userCRUD.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	_, err = s.userCRUD.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"stats.groupsJoined": user.Stats.GroupsJoined + 1,
			"stats.totalSavings": user.Stats.TotalSavings + group.Savings*quantity,
		},
		Push: map[string]interface{}{
			"aiProfile.purchaseHistory": authmodels.PurchaseRecord{
				Product:  group.ProductName,
				Category: group.Category,
				Quantity: quantity,
				Price:    group.PricePerUnit,
				Date:     time.Now().UnixMilli(),
			},
		},
	})
	return err
}

// LeaveGroup rời nhóm mua chung.
// Từ chối khi user không có membership đang active. Trạng thái nhóm không tự
// chuyển theo biến động thành viên.
func (s *GroupService) LeaveGroup(ctx context.Context, groupID primitive.ObjectID, userID primitive.ObjectID) (*models.Group, error) {
	group, err := s.BaseServiceMongoImpl.FindOneById(ctx, groupID)
	if err != nil {
		return nil, err
	}
	idx, err := checkLeaveGuard(&group, userID)
	if err != nil {
		return nil, err
	}

	members := make([]models.GroupMember, len(group.Members))
	copy(members, group.Members)
	members[idx].Status = models.MemberStatusLeft

	newQuantity := group.CurrentQuantity - group.Members[idx].QuantityNeeded
	if newQuantity < 0 {
		newQuantity = 0
	}
	completion := completionPercentage(newQuantity, group.TargetQuantity)

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, groupID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"members":              members,
			"currentQuantity":      newQuantity,
			"completionPercentage": completion,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// checkJoinGuards kiểm tra các điều kiện tham gia nhóm theo thứ tự:
// nhóm còn active, user chưa có membership record (kể cả đã rời),
// và số lượng không vượt mục tiêu.
func checkJoinGuards(group *models.Group, userID primitive.ObjectID, quantity float64) error {
	if group.Status != models.GroupStatusActive {
		return common.ErrGroupNotOpen
	}
	if group.FindMember(userID) >= 0 {
		return common.ErrAlreadyMember
	}
	if group.CurrentQuantity+quantity > group.TargetQuantity {
		return common.ErrGroupFull
	}
	return nil
}

// checkLeaveGuard kiểm tra user có membership đang active không,
// trả về index của membership record khi hợp lệ.
func checkLeaveGuard(group *models.Group, userID primitive.ObjectID) (int, error) {
	idx := group.FindMember(userID)
	if idx < 0 || group.Members[idx].Status != models.MemberStatusActive {
		return -1, common.ErrNotMember
	}
	return idx, nil
}

// completionPercentage tính phần trăm hoàn thành của nhóm, làm tròn về int.
func completionPercentage(current, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(current / target * 100))
}
