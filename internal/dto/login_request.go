// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@x.com"`
	Password string `json:"password" validate:"required" example:"pw123456"`
}
