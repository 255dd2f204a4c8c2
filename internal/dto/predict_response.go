// File: internal/dto/predict_response.go
package dto

// PredictResponse 風險預測回應
// swagger:model dto.PredictResponse
type PredictResponse struct {
	Prediction float64 `json:"prediction" example:"0.45"`
	Category   string  `json:"category" example:"Moderate"`
	Result     string  `json:"result" example:"Non-Diabetic"`
	Message    string  `json:"message" example:"You are not likely diabetic based on the current input. Keep monitoring your health regularly."`
}
