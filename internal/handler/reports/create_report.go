// File: internal/handler/reports/create_report.go
package reports

import (
	"context"
	"fmt"
	"net/http"

	"health-insight/internal/cache"
	"health-insight/internal/dto"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"
	"health-insight/internal/service"
	"health-insight/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateReportHandler 建立新評估報告
// @Summary     建立評估報告
// @Description 提交八項健康量測值，由評分引擎計算風險分數後存檔；分數由伺服器端計算
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body dto.MetricsRequest true "健康量測值"
// @Success     201 {object} dto.ReportResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /reports [post]
func CreateReportHandler(repo repository.ReportRepository, engine *service.ScoringEngine, rc cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		var req dto.MetricsRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request payload: %v", err)})
		}
		// 量測值範圍在邊界驗證 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 分數一律由評分引擎計算，不採用客戶端提交的值
		metrics := req.Metrics()
		score := engine.Score(metrics)

		rep, err := repo.CreateReport(c.Request().Context(), claims.UserID, metrics, score)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create report"})
		}

		// 列表快取失效移出請求路徑
		userID := claims.UserID
		wp.Submit(func() {
			rc.Del(context.Background(), listCacheKey(userID))
		})

		return c.JSON(http.StatusCreated, dto.NewReportResponse(rep, string(service.CategorizeRisk(rep.Score))))
	}
}
