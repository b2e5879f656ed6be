package utility

import (
	"errors"
	"testing"
	"time"

	"group_commerce/internal/common"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// TestCreateAndParseToken kiểm tra tạo và giải mã token thành công
func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	claims := jwt.StandardClaims{
		Subject:   "user-123",
		ExpiresAt: ExpiresAtFromNow(15 * time.Minute),
	}

	tokenString, err := CreateToken(secret, claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi không mong đợi: %v", err)
	}
	if tokenString == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	var parsed jwt.StandardClaims
	if err := ParseToken(secret, tokenString, &parsed); err != nil {
		t.Fatalf("ParseToken trả về lỗi không mong đợi: %v", err)
	}
	if parsed.Subject != "user-123" {
		t.Errorf("Subject sau giải mã = %q, mong đợi %q", parsed.Subject, "user-123")
	}
}

// TestParseTokenWrongSecret kiểm tra token ký bằng secret khác phải bị từ chối
func TestParseTokenWrongSecret(t *testing.T) {
	claims := jwt.StandardClaims{
		Subject:   "user-123",
		ExpiresAt: ExpiresAtFromNow(15 * time.Minute),
	}
	tokenString, err := CreateToken("secret-a", claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi không mong đợi: %v", err)
	}

	var parsed jwt.StandardClaims
	err = ParseToken("secret-b", tokenString, &parsed)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("ParseToken với secret sai trả về %v, mong đợi ErrTokenInvalid", err)
	}
}

// TestParseTokenExpired kiểm tra token hết hạn trả về ErrTokenExpired
func TestParseTokenExpired(t *testing.T) {
	secret := "test-secret"
	claims := jwt.StandardClaims{
		Subject:   "user-123",
		ExpiresAt: time.Now().Add(-1 * time.Minute).Unix(),
	}
	tokenString, err := CreateToken(secret, claims)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi không mong đợi: %v", err)
	}

	var parsed jwt.StandardClaims
	err = ParseToken(secret, tokenString, &parsed)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("ParseToken với token hết hạn trả về %v, mong đợi ErrTokenExpired", err)
	}
}

// TestHashAndComparePassword kiểm tra băm và so sánh mật khẩu
func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi không mong đợi: %v", err)
	}
	if hash == "MatKhau@123" {
		t.Error("HashPassword không được trả về plaintext")
	}
	if cost, err := bcrypt.Cost([]byte(hash)); err != nil || cost != 12 {
		t.Errorf("Cost của hash = %d (err %v), mong đợi 12", cost, err)
	}

	if err := ComparePassword(hash, "MatKhau@123"); err != nil {
		t.Errorf("ComparePassword với mật khẩu đúng trả về lỗi: %v", err)
	}

	err = ComparePassword(hash, "MatKhauSai")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("ComparePassword với mật khẩu sai trả về %v, mong đợi ErrInvalidCredentials", err)
	}
}
