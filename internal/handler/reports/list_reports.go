// File: internal/handler/reports/list_reports.go
package reports

import (
	"encoding/json"
	"net/http"

	"health-insight/internal/cache"
	"health-insight/internal/dto"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

// ListReportsHandler 列出當前使用者的所有評估報告
// @Summary     列出評估報告
// @Description 依建立順序回傳當前使用者的報告，僅能看到自己的資料
// @Tags        reports
// @Produce     json
// @Success     200 {array} dto.ReportResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /reports [get]
func ListReportsHandler(repo repository.ReportRepository, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		ctx := c.Request().Context()
		key := listCacheKey(claims.UserID)

		// 快取命中直接回傳序列化結果；快取鍵以使用者 ID 區隔
		if cached, err := rc.Get(ctx, key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}

		list, err := repo.ListReportsByOwner(ctx, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list reports"})
		}

		resp := make([]dto.ReportResponse, 0, len(list))
		for i := range list {
			resp = append(resp, dto.NewReportResponse(&list[i], string(service.CategorizeRisk(list[i].Score))))
		}

		// 回填快取；失敗不影響回應
		if data, err := json.Marshal(resp); err == nil {
			rc.Set(ctx, key, data, listCacheTTL)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
