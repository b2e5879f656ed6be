// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "group_commerce/internal/api/auth/dto"
	models "group_commerce/internal/api/auth/models"
	basesvc "group_commerce/internal/api/base/service"
	"group_commerce/internal/common"
	"group_commerce/internal/global"
	"group_commerce/internal/utility"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// issueTokenPair tạo cặp access + refresh token cho user.
// Access token ký bằng JwtSecret, refresh token ký bằng JwtRefreshSecret.
func (s *UserService) issueTokenPair(userID primitive.ObjectID) (string, string, error) {
	now := time.Now()
	accessClaims := models.JwtToken{
		UserID:    userID.Hex(),
		TokenType: models.TokenTypeAccess,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: utility.ExpiresAtFromNow(time.Duration(global.ServerConfig.AccessTokenTTLMinutes) * time.Minute),
		},
	}
	accessToken, err := utility.CreateToken(global.ServerConfig.JwtSecret, accessClaims)
	if err != nil {
		return "", "", err
	}
	refreshClaims := models.JwtToken{
		UserID:    userID.Hex(),
		TokenType: models.TokenTypeRefresh,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: utility.ExpiresAtFromNow(time.Duration(global.ServerConfig.RefreshTokenTTLDays) * 24 * time.Hour),
		},
	}
	refreshToken, err := utility.CreateToken(global.ServerConfig.JwtRefreshSecret, refreshClaims)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Register đăng ký tài khoản mới, trả về user kèm cặp token.
// Email và phone là unique sparse nên kiểm tra trùng trước khi insert.
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*authdto.AuthResponse, error) {
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if input.Phone != "" {
		if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"phone": input.Phone}, nil); err == nil {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Số điện thoại đã được đăng ký", common.StatusBadRequest, nil)
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hash,
		Role:     "vendor",
		Profile: models.UserProfile{
			BusinessName: input.BusinessName,
			BusinessType: input.BusinessType,
		},
		Preferences: models.UserPreferences{
			Categories:          []string{},
			MaxDeliveryDistance: 10,
			PreferredSuppliers:  []primitive.ObjectID{},
			Notifications:       models.NotificationPreferences{Email: true, Sms: true, Push: true},
		},
		AIProfile: models.UserAIProfile{
			PurchaseHistory: []models.PurchaseRecord{},
			BehaviorScore:   50,
			LastActivity:    now,
		},
		IsActive: true,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}

	accessToken, refreshToken, err := s.issueTokenPair(created.ID)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, created.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Register: Đăng ký tài khoản thành công")
	sanitizeUser(&updated)
	return &authdto.AuthResponse{User: &updated, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login đăng nhập bằng email + mật khẩu, chỉ chấp nhận tài khoản đang hoạt động.
// Mỗi lần đăng nhập sẽ rotate refresh token và stamp lại aiProfile.lastActivity.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.AuthResponse, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email, "isActive": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"refreshToken":           refreshToken,
			"aiProfile.lastActivity": time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Login: Đăng nhập thành công")
	sanitizeUser(&updated)
	return &authdto.AuthResponse{User: &updated, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh làm mới cặp token từ refresh token hiện hành.
// Refresh token chỉ dùng được một lần: token mới thay thế và vô hiệu hóa token cũ (rotation).
func (s *UserService) Refresh(ctx context.Context, input *authdto.RefreshInput) (*authdto.AuthResponse, error) {
	var claims models.JwtToken
	if err := utility.ParseToken(global.ServerConfig.JwtRefreshSecret, input.RefreshToken, &claims); err != nil {
		return nil, err
	}
	if claims.TokenType != models.TokenTypeRefresh {
		return nil, common.ErrTokenInvalid
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrTokenInvalid
		}
		return nil, err
	}
	// Chỉ chấp nhận refresh token đang được lưu, token cũ đã bị rotate sẽ bị từ chối
	if user.RefreshToken == "" || user.RefreshToken != input.RefreshToken {
		return nil, common.ErrTokenInvalid
	}
	if !user.IsActive {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị vô hiệu hóa", common.StatusForbidden, nil)
	}

	accessToken, refreshToken, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	})
	if err != nil {
		return nil, err
	}

	sanitizeUser(&updated)
	return &authdto.AuthResponse{User: &updated, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout đăng xuất người dùng (xóa refresh token đang lưu). Luôn thành công kể cả khi đã đăng xuất trước đó.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": ""},
	})
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}
	return nil
}

// UpdateProfile cập nhật thông tin profile và các cờ sở thích AI của người dùng.
// Chỉ các field có giá trị trong input mới được ghi đè.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateProfileInput) (*models.User, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.BusinessName != "" {
		set["profile.businessName"] = input.BusinessName
	}
	if input.BusinessType != "" {
		set["profile.businessType"] = input.BusinessType
	}
	if input.Address != nil {
		set["profile.address"] = *input.Address
	}
	if input.Categories != nil {
		set["preferences.categories"] = input.Categories
	}
	if input.AIFlags != nil {
		set["aiProfile.preferences"] = *input.AIFlags
	}
	if len(set) == 0 {
		user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		sanitizeUser(&user)
		return &user, nil
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	sanitizeUser(&updated)
	return &updated, nil
}

// sanitizeUser xóa các field nhạy cảm trước khi trả user ra ngoài.
func sanitizeUser(user *models.User) {
	user.Password = ""
	user.RefreshToken = ""
}
