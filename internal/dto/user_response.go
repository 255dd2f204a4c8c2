// File: internal/dto/user_response.go
package dto

import (
	"time"

	"health-insight/internal/model"
)

// UserResponse 回傳的使用者資訊，不含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Jane"`
	Email       string    `json:"email" example:"jane@x.com"`
	DateOfBirth string    `json:"date_of_birth,omitempty" example:"1990-05-15"`
	Gender      string    `json:"gender,omitempty" example:"Female"`
	PhoneNumber string    `json:"phone_number,omitempty" example:"(555) 123-4567"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
