// File: internal/model/report.go
package model

import "time"

// Metrics 八項健康量測值，為評分引擎的輸入
type Metrics struct {
	Pregnancies      float64 `db:"pregnancies" json:"pregnancies"`
	Glucose          float64 `db:"glucose" json:"glucose"`
	BloodPressure    float64 `db:"blood_pressure" json:"bloodPressure"`
	SkinThickness    float64 `db:"skin_thickness" json:"skinThickness"`
	Insulin          float64 `db:"insulin" json:"insulin"`
	BMI              float64 `db:"bmi" json:"bmi"`
	DiabetesPedigree float64 `db:"diabetes_pedigree" json:"diabetesPedigree"`
	Age              float64 `db:"age" json:"age"`
}

// Report 單次健康評估紀錄，UserID 建立後不可變更
type Report struct {
	ID        string    `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Metrics   Metrics   `json:"metrics"`
	Score     float64   `db:"score" json:"score"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
