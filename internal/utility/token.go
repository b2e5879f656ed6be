package utility

import (
	"fmt"
	"time"

	"group_commerce/internal/common"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// CreateToken tạo JWT token với claims cho trước, ký bằng HS256.
// @params - secret: bí mật ký token, claims: dữ liệu mã hóa trong token
// @returns - chuỗi token đã ký và lỗi nếu có
func CreateToken(secret string, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("không thể ký token: %w", err)
	}
	return signed, nil
}

// ParseToken giải mã và xác thực JWT token, ghi claims vào đối tượng claims truyền vào.
// Trả về common.ErrTokenExpired nếu token hết hạn, common.ErrTokenInvalid cho các lỗi khác.
func ParseToken(secret string, tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận thuật toán HMAC
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không được hỗ trợ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
	if !token.Valid {
		return common.ErrTokenInvalid
	}
	return nil
}

// ExpiresAtFromNow trả về Unix timestamp hết hạn tính từ bây giờ cộng thêm ttl.
func ExpiresAtFromNow(ttl time.Duration) int64 {
	return time.Now().Add(ttl).Unix()
}

// Cost bcrypt khi băm mật khẩu.
const bcryptCost = 12

// HashPassword băm mật khẩu bằng bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("không thể băm mật khẩu: %w", err)
	}
	return string(hash), nil
}

// ComparePassword so sánh mật khẩu plaintext với hash đã lưu.
// Trả về common.ErrInvalidCredentials nếu không khớp.
func ComparePassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
