// File: internal/dto/signup_request.go
package dto

// swagger:model dto.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane"`
	Email    string `json:"email" validate:"required,email" example:"jane@x.com"`
	Password string `json:"password" validate:"required" example:"pw123456"`
}
