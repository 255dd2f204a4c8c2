// File: internal/handler/reports/get_report.go
package reports

import (
	"errors"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

// GetReportHandler 取得單筆評估報告
// @Summary     取得評估報告
// @Description 依報告 ID 取得當前使用者持有的報告；不存在與非本人持有一律回 404
// @Tags        reports
// @Produce     json
// @Param       id path string true "報告 ID"
// @Success     200 {object} dto.ReportResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /reports/{id} [get]
func GetReportHandler(repo repository.ReportRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		rep, err := repo.GetReportForOwner(c.Request().Context(), c.Param("id"), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Report not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load report"})
		}

		return c.JSON(http.StatusOK, dto.NewReportResponse(rep, string(service.CategorizeRisk(rep.Score))))
	}
}
