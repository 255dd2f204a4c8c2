// File: internal/handler/auth/login.go
package auth

import (
	"fmt"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(users repository.UserRepository, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request payload: %v", err)})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 撈使用者資料；帳號不存在與密碼錯誤回覆相同訊息，不洩漏帳號是否存在
		user, err := users.GetUserByEmail(c.Request().Context(), req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid credentials"})
		}

		// 驗證密碼
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Invalid credentials"})
		}

		// 發行存取令牌
		token, expiresAt, err := tokens.IssueAccessToken(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.AuthResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      dto.NewUserResponse(user),
		})
	}
}
