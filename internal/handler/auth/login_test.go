package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"health-insight/internal/dto"
	"health-insight/internal/repository"
	"health-insight/internal/service"

	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	tokens := newTokenService(t)
	users := repository.NewMemoryUserRepository()

	hash, err := service.HashPassword("pw123456")
	require.NoError(t, err)
	created, err := users.CreateUser(context.Background(), "Jane", "jane@x.com", hash)
	require.NoError(t, err)

	// bind error
	ctx, rec := newJSONCtx("{not-json")
	require.NoError(t, LoginHandler(users, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	ctx, rec = newJSONCtx(`{"email":"jane@x.com"}`)
	require.NoError(t, LoginHandler(users, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email 與 wrong password 回覆相同訊息
	ctx, rec = newJSONCtx(`{"email":"nobody@x.com","password":"pw123456"}`)
	require.NoError(t, LoginHandler(users, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	unknownBody := rec.Body.String()

	ctx, rec = newJSONCtx(`{"email":"jane@x.com","password":"wrongpass"}`)
	require.NoError(t, LoginHandler(users, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, unknownBody, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "token")

	// success（Email 大小寫不敏感）
	ctx, rec = newJSONCtx(`{"email":"Jane@X.com","password":"pw123456"}`)
	require.NoError(t, LoginHandler(users, tokens)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := tokens.VerifyAccessToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
}
