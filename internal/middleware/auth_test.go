package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walks-api/internal/model"
	"walks-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = service.TokenConfig{
	Issuer:   "walks-api-test",
	Audience: "walks-api-test-clients",
	Secret:   []byte("test-signing-key"),
	TTL:      15 * time.Minute,
}

func newProtectedRouter(cfg service.TokenConfig, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(cfg, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"roles":    c.GetStringSlice("roles"),
		})
	})
	return router
}

func issueToken(t *testing.T, roles ...string) string {
	t.Helper()
	token, err := service.NewTokenIssuer(testCfg).Issue(&model.User{Username: "walker@example.com"}, roles)
	require.NoError(t, err)
	return token
}

func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testCfg.Secret)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		w := doRequest(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		w := doRequest(router, "Bearer "+issueToken(t, model.RoleReader))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "walker@example.com")
		assert.Contains(t, w.Body.String(), model.RoleReader)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		expired := signClaims(t, jwt.MapClaims{
			"sub":   "walker@example.com",
			"roles": []string{model.RoleReader},
			"iss":   testCfg.Issuer,
			"aud":   testCfg.Audience,
			"iat":   time.Now().Add(-time.Hour).Unix(),
			"exp":   time.Now().Add(-time.Minute).Unix(),
		})
		w := doRequest(router, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without expiry is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		noExp := signClaims(t, jwt.MapClaims{
			"sub": "walker@example.com",
			"iss": testCfg.Issuer,
			"aud": testCfg.Audience,
		})
		w := doRequest(router, "Bearer "+noExp)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong issuer is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		badIssuer := signClaims(t, jwt.MapClaims{
			"sub": "walker@example.com",
			"iss": "other-api",
			"aud": testCfg.Audience,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := doRequest(router, "Bearer "+badIssuer)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong audience is unauthorized", func(t *testing.T) {
		router := newProtectedRouter(testCfg)
		badAudience := signClaims(t, jwt.MapClaims{
			"sub": "walker@example.com",
			"iss": testCfg.Issuer,
			"aud": "other-clients",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := doRequest(router, "Bearer "+badAudience)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing required role is forbidden", func(t *testing.T) {
		router := newProtectedRouter(testCfg, model.RoleWriter)
		w := doRequest(router, "Bearer "+issueToken(t, model.RoleReader))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("any allowed role passes", func(t *testing.T) {
		router := newProtectedRouter(testCfg, model.RoleReader, model.RoleWriter)
		w := doRequest(router, "Bearer "+issueToken(t, model.RoleWriter))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
