// Package chatsvc - service phiên trò chuyện với trợ lý AI.
//
// Mỗi user có tối đa một phiên đang hoạt động. SendMessage điều phối toàn bộ
// một lượt hội thoại: ghi tin nhắn user, phân loại intent, gom số liệu tổng
// hợp rồi sinh câu trả lời.
package chatsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	aidto "group_commerce/internal/api/ai/dto"
	aisvc "group_commerce/internal/api/ai/service"
	authmodels "group_commerce/internal/api/auth/models"
	basesvc "group_commerce/internal/api/base/service"
	chatdto "group_commerce/internal/api/chat/dto"
	models "group_commerce/internal/api/chat/models"
	groupmodels "group_commerce/internal/api/group/models"
	requestmodels "group_commerce/internal/api/request/models"
	suppliermodels "group_commerce/internal/api/supplier/models"
	"group_commerce/internal/common"
	"group_commerce/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Số nhóm active tối đa đưa vào bước gợi ý cá nhân hóa của một lượt chat.
const chatRecommendPoolSize = 20

// ChatService là cấu trúc chứa các phương thức liên quan đến phiên trò chuyện
type ChatService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatSession]
	userCRUD     *basesvc.BaseServiceMongoImpl[authmodels.User]
	groupCRUD    *basesvc.BaseServiceMongoImpl[groupmodels.Group]
	requestCRUD  *basesvc.BaseServiceMongoImpl[requestmodels.Request]
	supplierCRUD *basesvc.BaseServiceMongoImpl[suppliermodels.Supplier]
}

// NewChatService tạo mới ChatService
func NewChatService() (*ChatService, error) {
	sessionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatSessions)
	if !exist {
		return nil, fmt.Errorf("failed to get chat sessions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	groupCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Groups)
	if !exist {
		return nil, fmt.Errorf("failed to get groups collection: %v", common.ErrNotFound)
	}
	requestCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Requests)
	if !exist {
		return nil, fmt.Errorf("failed to get requests collection: %v", common.ErrNotFound)
	}
	supplierCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Suppliers)
	if !exist {
		return nil, fmt.Errorf("failed to get suppliers collection: %v", common.ErrNotFound)
	}
	return &ChatService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatSession](sessionCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		groupCRUD:            basesvc.NewBaseServiceMongo[groupmodels.Group](groupCollection),
		requestCRUD:          basesvc.NewBaseServiceMongo[requestmodels.Request](requestCollection),
		supplierCRUD:         basesvc.NewBaseServiceMongo[suppliermodels.Supplier](supplierCollection),
	}, nil
}

// GetOrCreateSession trả về phiên đang hoạt động của user, tạo mới kèm tin
// nhắn chào nếu chưa có.
func (s *ChatService) GetOrCreateSession(ctx context.Context, userID primitive.ObjectID) (*models.ChatSession, error) {
	session, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID, "isActive": true}, nil)
	if err == nil {
		return &session, nil
	}
	if err != common.ErrNotFound {
		return nil, err
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, models.ChatSession{
		UserID:   userID,
		IsActive: true,
		Messages: []models.ChatMessage{
			{
				Sender:    models.SenderAI,
				Content:   GreetingMessage,
				Timestamp: time.Now().UnixMilli(),
				Metadata: models.MessageMetadata{
					Intent:     models.IntentGreeting,
					Confidence: 1.0,
				},
			},
		},
		Context: models.SessionContext{
			ActiveGroups:   []primitive.ObjectID{},
			RecentRequests: []primitive.ObjectID{},
		},
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "session_id": created.ID.Hex()}).Info("GetOrCreateSession: Tạo phiên trò chuyện mới")
	return &created, nil
}

// SendMessage xử lý một lượt hội thoại: lưu tin nhắn của user, phân loại
// intent, sinh câu trả lời rồi cập nhật phiên và ngữ cảnh.
func (s *ChatService) SendMessage(ctx context.Context, userID primitive.ObjectID, message string) (*chatdto.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, common.ErrRequiredField
	}

	session, err := s.GetOrCreateSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	intent := ClassifyIntent(message)
	agg := s.collectAggregates(ctx, userID, intent)

	var user *authmodels.User
	if u, userErr := s.userCRUD.FindOneById(ctx, userID); userErr == nil {
		user = &u
	} else {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": userErr.Error()}).Warn("⚠️ SendMessage: Không lấy được user, trả lời với hồ sơ rỗng")
		user = &authmodels.User{}
	}

	now := time.Now().UnixMilli()
	userMessage := models.ChatMessage{
		Sender:    models.SenderUser,
		Content:   message,
		Timestamp: now,
	}
	reply := models.ChatMessage{
		Sender:    models.SenderAI,
		Content:   GenerateResponse(intent, user, agg),
		Timestamp: now,
		Metadata: models.MessageMetadata{
			Intent:     intent,
			Confidence: IntentConfidence,
		},
	}

	messages := append(session.Messages, userMessage, reply)
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, session.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"messages": messages,
			"context":  s.buildContext(ctx, userID),
		},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "intent": intent}).Info("SendMessage: Đã trả lời tin nhắn")
	return &chatdto.ChatReply{Reply: reply, Session: &updated}, nil
}

// ClearSession đóng phiên đang hoạt động của user. Không có phiên nào
// cũng coi là thành công.
func (s *ChatService) ClearSession(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx,
		bson.M{"userId": userID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UnixMilli()}},
		nil,
	)
	if err == common.ErrNotFound {
		return nil
	}
	return err
}

// collectAggregates gom các số liệu tổng hợp cần cho câu trả lời của intent.
// Mọi lỗi truy vấn chỉ warn, số liệu thiếu giữ giá trị zero.
func (s *ChatService) collectAggregates(ctx context.Context, userID primitive.ObjectID, intent string) *ChatAggregates {
	agg := &ChatAggregates{}

	switch intent {
	case models.IntentGroupInquiry:
		if count, err := s.groupCRUD.CountDocuments(ctx, bson.M{"status": groupmodels.GroupStatusActive}); err == nil {
			agg.ActiveGroups = count
		} else {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("⚠️ collectAggregates: Không đếm được nhóm active")
		}
		userGroupFilter := bson.M{"$or": []bson.M{
			{"creatorId": userID},
			{"members.userId": userID},
		}}
		if count, err := s.groupCRUD.CountDocuments(ctx, userGroupFilter); err == nil {
			agg.UserGroups = count
		} else {
			logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ collectAggregates: Không đếm được nhóm của user")
		}
	case models.IntentSupplierInquiry:
		if count, err := s.supplierCRUD.CountDocuments(ctx, bson.M{"isVerified": true, "isActive": true}); err == nil {
			agg.VerifiedSuppliers = count
		} else {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("⚠️ collectAggregates: Không đếm được nhà cung cấp đã xác minh")
		}
	case models.IntentRecommendationRequest:
		agg.TopRecommendation = s.topRecommendation(ctx, userID)
	}

	return agg
}

// topRecommendation chấm điểm các nhóm active gần nhất theo hồ sơ user và trả
// về gợi ý cao nhất, nil nếu không có gợi ý nào vượt ngưỡng.
func (s *ChatService) topRecommendation(ctx context.Context, userID primitive.ObjectID) *aidto.GroupRecommendation {
	user, err := s.userCRUD.FindOneById(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ topRecommendation: Không lấy được user")
		return nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(chatRecommendPoolSize)
	groups, err := s.groupCRUD.Find(ctx, bson.M{"status": groupmodels.GroupStatusActive}, opts)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("⚠️ topRecommendation: Không lấy được danh sách nhóm active")
		return nil
	}

	recommendations := aisvc.RecommendGroups(&user, groups)
	if len(recommendations) == 0 {
		return nil
	}
	return &recommendations[0]
}

// buildContext dựng lại ngữ cảnh hội thoại từ trạng thái hiện tại của user:
// các nhóm active user tham gia và các yêu cầu mua gần nhất.
func (s *ChatService) buildContext(ctx context.Context, userID primitive.ObjectID) models.SessionContext {
	sessionContext := models.SessionContext{
		ActiveGroups:      []primitive.ObjectID{},
		RecentRequests:    []primitive.ObjectID{},
		ConversationState: "active",
	}

	groupFilter := bson.M{
		"status": groupmodels.GroupStatusActive,
		"$or": []bson.M{
			{"creatorId": userID},
			{"members.userId": userID},
		},
	}
	if groups, err := s.groupCRUD.Find(ctx, groupFilter, nil); err == nil {
		for _, group := range groups {
			sessionContext.ActiveGroups = append(sessionContext.ActiveGroups, group.ID)
		}
	} else {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ buildContext: Không lấy được nhóm của user")
	}

	requestOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	if requests, err := s.requestCRUD.Find(ctx, bson.M{"userId": userID}, requestOpts); err == nil {
		for _, request := range requests {
			sessionContext.RecentRequests = append(sessionContext.RecentRequests, request.ID)
		}
	} else {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Warn("⚠️ buildContext: Không lấy được yêu cầu mua của user")
	}

	return sessionContext
}
