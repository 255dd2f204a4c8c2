// File: internal/dto/update_profile_request.go
package dto

// UpdateProfileRequest 個人資料更新；空欄位保留原值，Email 不可變更
// swagger:model dto.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name        string `json:"name" example:"Jane"`
	DateOfBirth string `json:"date_of_birth" example:"1990-05-15"`
	Gender      string `json:"gender" example:"Female"`
	PhoneNumber string `json:"phone_number" example:"(555) 123-4567"`
}
