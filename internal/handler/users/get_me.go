// File: internal/handler/users/get_me.go
package users

import (
	"errors"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(users repository.UserRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 從 context 取得 JWT claims
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		// 根據 claims.UserID 查詢使用者
		user, err := users.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
