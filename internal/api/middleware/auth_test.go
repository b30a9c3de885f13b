package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/pkg/jwthelper"
)

func newAuthRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewAuthenticator(signingKey).VerifyJWT())
	router.GET("/protected", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"admin_id": ctx.GetUint(CtxKeyAdminID)})
	})

	return router
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := jwthelper.GenerateToken([]byte("secret"), 7, "test-agent")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "test-agent")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"admin_id":7`)
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	router := newAuthRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_WrongSigningKey(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := jwthelper.GenerateToken([]byte("other"), 7, "test-agent")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "test-agent")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_UserAgentMismatch(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := jwthelper.GenerateToken([]byte("secret"), 7, "issued-agent")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "different-agent")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
