// File: internal/dto/report_response.go
package dto

import (
	"time"

	"health-insight/internal/model"
)

// ReportResponse 單筆評估報告
// swagger:model dto.ReportResponse
type ReportResponse struct {
	ID               string    `json:"id" example:"2f9d5f44-9a35-4b1e-9c62-7a3cf7b1a111"`
	UserID           int       `json:"user_id" example:"1"`
	Pregnancies      float64   `json:"pregnancies" example:"0"`
	Glucose          float64   `json:"glucose" example:"135"`
	BloodPressure    float64   `json:"bloodPressure" example:"80"`
	SkinThickness    float64   `json:"skinThickness" example:"20"`
	Insulin          float64   `json:"insulin" example:"90"`
	BMI              float64   `json:"bmi" example:"24.5"`
	DiabetesPedigree float64   `json:"diabetesPedigree" example:"0.5"`
	Age              float64   `json:"age" example:"35"`
	Score            float64   `json:"score" example:"0.45"`
	Category         string    `json:"category" example:"Moderate"`
	CreatedAt        time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewReportResponse 由 model.Report 組裝回應；Category 為衍生欄位，不入庫
func NewReportResponse(rep *model.Report, category string) ReportResponse {
	return ReportResponse{
		ID:               rep.ID,
		UserID:           rep.UserID,
		Pregnancies:      rep.Metrics.Pregnancies,
		Glucose:          rep.Metrics.Glucose,
		BloodPressure:    rep.Metrics.BloodPressure,
		SkinThickness:    rep.Metrics.SkinThickness,
		Insulin:          rep.Metrics.Insulin,
		BMI:              rep.Metrics.BMI,
		DiabetesPedigree: rep.Metrics.DiabetesPedigree,
		Age:              rep.Metrics.Age,
		Score:            rep.Score,
		Category:         category,
		CreatedAt:        rep.CreatedAt,
	}
}
