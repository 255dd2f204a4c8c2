// File: internal/handler/predict.go
package handler

import (
	"fmt"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

// PredictHandler 計算風險分數但不存檔
// @Summary     風險預測
// @Description 提交八項健康量測值，回傳風險分數、分級與建議訊息；不需登入
// @Tags        predict
// @Accept      json
// @Produce     json
// @Param       request body dto.MetricsRequest true "健康量測值"
// @Success     200 {object} dto.PredictResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /predict [post]
func PredictHandler(engine *service.ScoringEngine) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.MetricsRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request payload: %v", err)})
		}
		// 再驗證量測值範圍 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		score := engine.Score(req.Metrics())
		result, message := service.PredictionResult(score)

		return c.JSON(http.StatusOK, dto.PredictResponse{
			Prediction: score,
			Category:   string(service.CategorizeRisk(score)),
			Result:     result,
			Message:    message,
		})
	}
}
