package service

import (
	"testing"

	"health-insight/internal/model"

	"github.com/stretchr/testify/require"
)

func TestScoreDeterministic(t *testing.T) {
	engine := NewScoringEngine(nil)

	m := model.Metrics{
		Glucose:          135,
		BMI:              24.5,
		Age:              35,
		BloodPressure:    80,
		DiabetesPedigree: 0.5,
	}

	// 0.25 (glucose>125) + 0.05 (bmi) + 0.05 (age>30) + 0.05 (bp) + 0.05 (pedigree)
	got := engine.Score(m)
	require.InDelta(t, 0.45, got, 1e-9)

	// 同一輸入必得 bit-for-bit 相同結果
	require.Equal(t, got, engine.Score(m))
}

func TestScoreBounds(t *testing.T) {
	engine := NewScoringEngine(nil)

	// 全因子最高檔合計 1.0，夾至上限
	high := model.Metrics{Glucose: 200, BMI: 40, Age: 70, BloodPressure: 100, DiabetesPedigree: 1.5}
	require.InDelta(t, MaxRiskScore, engine.Score(high), 1e-9)

	// 全零輸入不低於下限
	require.GreaterOrEqual(t, engine.Score(model.Metrics{}), MinRiskScore)

	// 大幅負向擾動仍夾在下限
	down := NewScoringEngine(func() float64 { return -1 })
	require.InDelta(t, MinRiskScore, down.Score(model.Metrics{}), 1e-9)
}

func TestScoreMonotonic(t *testing.T) {
	engine := NewScoringEngine(nil)
	base := model.Metrics{Glucose: 90, BMI: 22, Age: 25, BloodPressure: 70, DiabetesPedigree: 0.2}

	steps := []func(m *model.Metrics, v float64){
		func(m *model.Metrics, v float64) { m.Glucose = v * 3 },
		func(m *model.Metrics, v float64) { m.BMI = 10 + v*0.4 },
		func(m *model.Metrics, v float64) { m.Age = v * 1.2 },
		func(m *model.Metrics, v float64) { m.BloodPressure = v * 2 },
		func(m *model.Metrics, v float64) { m.DiabetesPedigree = 0.05 + v*0.02 },
	}

	// 其他輸入固定時，單一因子遞增分數必單調不減
	for i, step := range steps {
		prev := -1.0
		for v := 0.0; v <= 100; v++ {
			m := base
			step(&m, v)
			got := engine.Score(m)
			require.GreaterOrEqual(t, got, prev, "factor %d not monotonic at %v", i, v)
			prev = got
		}
	}
}

func TestScoreJitterInjection(t *testing.T) {
	fixed := NewScoringEngine(func() float64 { return 0.1 })
	plain := NewScoringEngine(nil)

	m := model.Metrics{Glucose: 110, BMI: 26, Age: 45, BloodPressure: 85, DiabetesPedigree: 0.7}
	require.InDelta(t, plain.Score(m)+0.1, fixed.Score(m), 1e-9)

	// 擾動固定為零時與決定性模式一致
	zero := NewScoringEngine(func() float64 { return 0 })
	require.Equal(t, plain.Score(m), zero.Score(m))

	// Jitter 落在 [-0.05, 0.05)
	for i := 0; i < 1000; i++ {
		j := Jitter()
		require.GreaterOrEqual(t, j, -0.05)
		require.Less(t, j, 0.05)
	}
}

func TestCategorizeRisk(t *testing.T) {
	require.Equal(t, RiskLow, CategorizeRisk(0.05))
	require.Equal(t, RiskLow, CategorizeRisk(0.19))
	require.Equal(t, RiskModerate, CategorizeRisk(0.2))
	require.Equal(t, RiskModerate, CategorizeRisk(0.49))
	require.Equal(t, RiskHigh, CategorizeRisk(0.5))
	require.Equal(t, RiskHigh, CategorizeRisk(0.95))
}

func TestPredictionResult(t *testing.T) {
	result, message := PredictionResult(0.45)
	require.Equal(t, "Non-Diabetic", result)
	require.NotEmpty(t, message)

	result, message = PredictionResult(0.75)
	require.Equal(t, "Diabetic", result)
	require.NotEmpty(t, message)
}
