// File: internal/dto/auth_response.go
package dto

import "time"

// AuthResponse 註冊與登入成功的回應
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time    `json:"expires_at" example:"2025-05-01T16:04:05Z"`
	User      UserResponse `json:"user"`
}
