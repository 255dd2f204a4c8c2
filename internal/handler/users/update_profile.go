// File: internal/handler/users/update_profile.go
package users

import (
	"errors"
	"fmt"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/middleware"
	"health-insight/internal/repository"

	"github.com/labstack/echo/v4"
)

// UpdateProfileHandler 更新當前使用者個人資料
// @Summary     Update current user profile
// @Description 更新姓名、生日、性別與電話；空欄位保留原值，Email 不可變更
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.UpdateProfileRequest true "個人資料"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/profile [put]
func UpdateProfileHandler(users repository.UserRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		var req dto.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request payload: %v", err)})
		}

		ctx := c.Request().Context()
		user, err := users.GetUserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}

		// 空欄位保留原值
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.DateOfBirth != "" {
			user.DateOfBirth = req.DateOfBirth
		}
		if req.Gender != "" {
			user.Gender = req.Gender
		}
		if req.PhoneNumber != "" {
			user.PhoneNumber = req.PhoneNumber
		}

		if err := users.UpdateUserProfile(ctx, user); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update profile"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
