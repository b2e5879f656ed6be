// Package middleware - middleware xác thực người dùng bằng JWT access token.
package middleware

import (
	"strings"
	"sync"
	"time"

	models "group_commerce/internal/api/auth/models"
	basesvc "group_commerce/internal/api/base/service"
	"group_commerce/internal/common"
	"group_commerce/internal/global"
	"group_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthManager quản lý xác thực, dùng cache để giảm số lần query user theo từng request
type AuthManager struct {
	userCRUD *basesvc.BaseServiceMongoImpl[models.User]
	cache    *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về instance singleton của AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		if !exist {
			logrus.Error("⚠️ AuthManager: Không tìm thấy collection users trong registry")
			return
		}
		authManager = &AuthManager{
			userCRUD: basesvc.NewBaseServiceMongo[models.User](userCol),
			cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManager
}

// getUserByID lấy user theo ID, ưu tiên cache trước khi query MongoDB
func (am *AuthManager) getUserByID(c fiber.Ctx, userID primitive.ObjectID) (*models.User, error) {
	cacheKey := "auth_user:" + userID.Hex()
	if cached, found := am.cache.Get(cacheKey); found {
		if user, ok := cached.(*models.User); ok {
			return user, nil
		}
	}
	user, err := am.userCRUD.FindOneById(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	am.cache.Set(cacheKey, &user)
	return &user, nil
}

// AuthMiddleware xác thực JWT access token từ header Authorization.
// Thành công thì gắn user_id (hex string) và user vào Locals cho handler phía sau.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		am := GetAuthManager()
		if am == nil {
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil))
			return nil
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		var claims models.JwtToken
		if err := utility.ParseToken(global.ServerConfig.JwtSecret, tokenString, &claims); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		// Refresh token không được dùng thay cho access token
		if claims.TokenType != models.TokenTypeAccess {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user, err := am.getUserByID(c, userID)
		if err != nil {
			HandleErrorResponse(c, common.ErrUserNotFound)
			return nil
		}
		if !user.IsActive {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị vô hiệu hóa", common.StatusForbidden, nil))
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}
