package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return tok
}

func validClaims(sub any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

// ミドルウェアを通して最後にuser_idを返すだけのハンドラを叩く
func doRequest(t *testing.T, authz string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := middleware.AuthJWT(config.Config{JWTSecret: testSecret})
	h := mw(func(c echo.Context) error {
		userID := c.Get(middleware.CtxUserIDKey).(int64)
		return c.String(http.StatusOK, strconv.FormatInt(userID, 10))
	})

	err := h(c)
	assert.NoError(t, err)
	return rec
}

func TestAuthJWT_NoHeader(t *testing.T) {
	rec := doRequest(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
}

func TestAuthJWT_NotBearer(t *testing.T) {
	rec := doRequest(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthJWT_MalformedToken(t *testing.T) {
	rec := doRequest(t, "Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, "other-secret", validClaims(int64(5)))
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// HS256以外の署名方式は拒否
func TestAuthJWT_WrongSigningMethod(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS512, testSecret, validClaims(int64(5)))
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": int64(5),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, claims)
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthJWT_ValidToken(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(int64(5)))
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Body.String())
}

// 大文字小文字を問わないBearer
func TestAuthJWT_LowercaseBearer(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(int64(5)))
	rec := doRequest(t, "bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// subが文字列のトークンも受ける
func TestAuthJWT_StringSub(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("5"))
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Body.String())
}

func TestAuthJWT_NonPositiveSub(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(int64(0)))
	rec := doRequest(t, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
