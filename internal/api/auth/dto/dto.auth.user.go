package authdto

import models "group_commerce/internal/api/auth/models"

// RegisterInput đầu vào đăng ký tài khoản mới.
type RegisterInput struct {
	Name         string `json:"name" validate:"required,min=2,no_xss"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Password     string `json:"password" validate:"required,min=6"`
	BusinessName string `json:"businessName,omitempty" validate:"omitempty,no_xss"`
	BusinessType string `json:"businessType,omitempty"`
}

// LoginInput đầu vào đăng nhập bằng email và mật khẩu.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput đầu vào làm mới cặp token.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdateProfileInput đầu vào cập nhật profile của người dùng đang đăng nhập.
// Các field nil sẽ được giữ nguyên.
type UpdateProfileInput struct {
	Name         string                `json:"name,omitempty" validate:"omitempty,min=2,no_xss"`
	Phone        string                `json:"phone,omitempty"`
	BusinessName string                `json:"businessName,omitempty"`
	BusinessType string                `json:"businessType,omitempty"`
	Address      *models.Address       `json:"address,omitempty"`
	Categories   []string              `json:"categories,omitempty"`
	AIFlags      *models.AIPreferences `json:"aiPreferences,omitempty"`
}

// AuthResponse cặp token trả về sau register/login/refresh.
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}
