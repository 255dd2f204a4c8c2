// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 存取令牌的預設有效時間
const AccessTokenTTL = time.Hour

var (
	// ErrTokenMalformed 令牌格式不正確或無法解析
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenBadSignature 令牌簽章驗證失敗
	ErrTokenBadSignature = errors.New("invalid token signature")
	// ErrTokenExpired 令牌已過期
	ErrTokenExpired = errors.New("token expired")
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService 以 process 啟動時載入一次的簽章金鑰發行與驗證存取令牌
// 金鑰初始化後唯讀，可供所有請求並行使用
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService；secret 不可為空，ttl <= 0 時採用 AccessTokenTTL
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}, nil
}

// IssueAccessToken 依據使用者 ID 產生 JWT，回傳令牌與到期時間
func (s *TokenService) IssueAccessToken(userID int) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(s.ttl)
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌
// 格式、簽章與到期錯誤分別對應 ErrTokenMalformed、ErrTokenBadSignature、ErrTokenExpired
// 採嚴格 base64 解碼，非正規編碼的簽章段一律拒絕
func (s *TokenService) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return timeNow() }), jwt.WithStrictDecoding())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
