package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"health-insight/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims 從 Authorization header 取出並驗證 Bearer token
// header 缺漏或格式錯誤與無效令牌一律視為 401
func extractClaims(c echo.Context, tokens *service.TokenService) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 為唯一的認證執行點；受保護路由不得信任任何繞過此處的呼叫端身分
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext 取出 RequireAuth 放入的身分；不存在時回傳 nil
func ClaimsFromContext(c echo.Context) *service.CustomClaims {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}
