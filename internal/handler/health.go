// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"health-insight/internal/cache"
	"health-insight/internal/database"
	"health-insight/internal/dto"

	"github.com/labstack/echo/v4"
)

// 探測鍵需過期，避免在快取中累積常駐鍵
const healthProbeTTL = time.Minute

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 服務狀態
	Status string `json:"status" example:"ok"`

	// 回應訊息
	Message string `json:"message" example:"Server is running"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /health [get]
func HealthHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := rc.Set(ctx, "health:probe", "ok", healthProbeTTL).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Message: "Server is running"})
	}
}
