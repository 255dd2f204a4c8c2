// File: internal/service/scoring.go
package service

import (
	"math"
	"math/rand"

	"health-insight/internal/model"
)

// 風險分數的上下限
const (
	MinRiskScore = 0.05
	MaxRiskScore = 0.95
)

// RiskCategory 風險分級，所有端點共用同一套分級規則
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskModerate RiskCategory = "Moderate"
	RiskHigh     RiskCategory = "High"
)

// ScoringEngine 以固定加權規則表計算糖尿病風險分數
// 規則表非訓練模型；jitter 為可注入的擾動來源，nil 表示完全決定性輸出
type ScoringEngine struct {
	jitter func() float64
}

// NewScoringEngine 建立評分引擎；jitter 傳入 nil 即為決定性模式
func NewScoringEngine(jitter func() float64) *ScoringEngine {
	return &ScoringEngine{jitter: jitter}
}

// Jitter 回傳 [-0.05, 0.05) 區間的隨機擾動，正式環境可選用
func Jitter() float64 {
	return rand.Float64()*0.1 - 0.05
}

// Score 依五項因子的門檻表累加風險分數，並夾在 [MinRiskScore, MaxRiskScore]
// 同一組輸入在 jitter 為 nil 時必得相同結果；各因子單調不減
func (e *ScoringEngine) Score(m model.Metrics) float64 {
	score := 0.0

	// 血糖（權重最高）
	switch {
	case m.Glucose > 140:
		score += 0.35
	case m.Glucose > 125:
		score += 0.25
	case m.Glucose > 100:
		score += 0.15
	default:
		score += 0.05
	}

	// BMI
	switch {
	case m.BMI > 35:
		score += 0.2
	case m.BMI > 30:
		score += 0.15
	case m.BMI > 25:
		score += 0.1
	default:
		score += 0.05
	}

	// 年齡
	switch {
	case m.Age > 60:
		score += 0.15
	case m.Age > 40:
		score += 0.1
	case m.Age > 30:
		score += 0.05
	default:
		score += 0.02
	}

	// 血壓
	switch {
	case m.BloodPressure > 90:
		score += 0.15
	case m.BloodPressure > 80:
		score += 0.1
	default:
		score += 0.05
	}

	// 家族病史指數
	switch {
	case m.DiabetesPedigree > 1.0:
		score += 0.15
	case m.DiabetesPedigree > 0.5:
		score += 0.1
	default:
		score += 0.05
	}

	if e.jitter != nil {
		score += e.jitter()
	}

	return math.Min(MaxRiskScore, math.Max(MinRiskScore, score))
}

// CategorizeRisk 將分數映射為風險分級：<0.2 Low、<0.5 Moderate、其餘 High
func CategorizeRisk(score float64) RiskCategory {
	switch {
	case score < 0.2:
		return RiskLow
	case score < 0.5:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// PredictionResult 依分數回傳預測結果與建議訊息
func PredictionResult(score float64) (string, string) {
	if score > 0.5 {
		return "Diabetic", "You may have diabetes. Please consult a healthcare provider for further evaluation."
	}
	return "Non-Diabetic", "You are not likely diabetic based on the current input. Keep monitoring your health regularly."
}
