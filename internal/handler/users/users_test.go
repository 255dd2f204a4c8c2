package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"health-insight/internal/middleware"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	v *validator.Validate
}

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

func newAuthedCtx(method, body string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if userID != 0 {
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: userID})
	}
	return ctx, rec
}

func TestGetMeHandler(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	u, err := users.CreateUser(context.Background(), "Jane", "jane@x.com", "hash123")
	require.NoError(t, err)

	// missing claims
	ctx, rec := newAuthedCtx(http.MethodGet, "", 0)
	require.NoError(t, GetMeHandler(users)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// user not found
	ctx, rec = newAuthedCtx(http.MethodGet, "", 999)
	require.NoError(t, GetMeHandler(users)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// success：回應不含密碼哈希
	ctx, rec = newAuthedCtx(http.MethodGet, "", u.ID)
	require.NoError(t, GetMeHandler(users)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "jane@x.com")
	require.NotContains(t, rec.Body.String(), "hash123")
	require.NotContains(t, rec.Body.String(), "password")
}

func TestUpdateProfileHandler(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	u, err := users.CreateUser(context.Background(), "Jane", "jane@x.com", "hash123")
	require.NoError(t, err)

	// missing claims
	ctx, rec := newAuthedCtx(http.MethodPut, `{}`, 0)
	require.NoError(t, UpdateProfileHandler(users)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// bind error
	ctx, rec = newAuthedCtx(http.MethodPut, "{not-json", u.ID)
	require.NoError(t, UpdateProfileHandler(users)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 部分更新：空欄位保留原值
	ctx, rec = newAuthedCtx(http.MethodPut, `{"date_of_birth":"1990-05-15","phone_number":"(555) 123-4567"}`, u.ID)
	require.NoError(t, UpdateProfileHandler(users)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := users.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane", got.Name)
	require.Equal(t, "1990-05-15", got.DateOfBirth)
	require.Equal(t, "(555) 123-4567", got.PhoneNumber)
	// Email 不可變更
	require.Equal(t, "jane@x.com", got.Email)

	// user not found
	ctx, rec = newAuthedCtx(http.MethodPut, `{"name":"X"}`, 999)
	require.NoError(t, UpdateProfileHandler(users)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
