// File: internal/dto/metrics_request.go
package dto

import "health-insight/internal/model"

// MetricsRequest 八項健康量測值，邊界檢查在此完成，評分引擎不再驗證範圍
// swagger:model dto.MetricsRequest
type MetricsRequest struct {
	Pregnancies      float64 `json:"pregnancies" validate:"gte=0,lte=20" example:"0"`
	Glucose          float64 `json:"glucose" validate:"gte=0,lte=300" example:"135"`
	BloodPressure    float64 `json:"bloodPressure" validate:"gte=0,lte=200" example:"80"`
	SkinThickness    float64 `json:"skinThickness" validate:"gte=0,lte=100" example:"20"`
	Insulin          float64 `json:"insulin" validate:"gte=0,lte=1000" example:"90"`
	BMI              float64 `json:"bmi" validate:"gte=10,lte=50" example:"24.5"`
	DiabetesPedigree float64 `json:"diabetesPedigree" validate:"gte=0.05,lte=2.5" example:"0.5"`
	Age              float64 `json:"age" validate:"gte=0,lte=120" example:"35"`
}

// Metrics 轉換為模型層的量測值
func (r MetricsRequest) Metrics() model.Metrics {
	return model.Metrics{
		Pregnancies:      r.Pregnancies,
		Glucose:          r.Glucose,
		BloodPressure:    r.BloodPressure,
		SkinThickness:    r.SkinThickness,
		Insulin:          r.Insulin,
		BMI:              r.BMI,
		DiabetesPedigree: r.DiabetesPedigree,
		Age:              r.Age,
	}
}
