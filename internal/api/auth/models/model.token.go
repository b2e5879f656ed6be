// Package models - JwtToken thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// Loại token trong claims, dùng để chặn dùng nhầm refresh token làm access token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JwtToken chứa data được mã hóa trong JWT token.
type JwtToken struct {
	UserID    string `json:"userId"`
	TokenType string `json:"tokenType"`
	jwt.StandardClaims
}
