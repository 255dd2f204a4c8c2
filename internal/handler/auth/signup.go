// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"health-insight/internal/dto"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者並回傳存取令牌
// @Summary     註冊使用者
// @Description 建立新帳號，Email 不分大小寫且必須唯一，成功即發行 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.SignupRequest true "註冊資料"
// @Success     201 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(users repository.UserRepository, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request payload: %v", err)})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 哈希密碼，明文不落地
		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid password"})
		}

		// 重複 Email 檢查與寫入由 repository 原子完成
		user, err := users.CreateUser(c.Request().Context(), req.Name, req.Email, hash)
		if err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "User already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		// 發行存取令牌
		token, expiresAt, err := tokens.IssueAccessToken(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      dto.NewUserResponse(user),
		})
	}
}
