package middleware

import (
	"PedGuard/internal/api/config"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthOptionalMiddlewareIdentifiesCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, security.Init(config.JWTConfig{Secret: "middleware-test-secret"}))
	token, err := security.GenerateToken(42, []string{consts.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/suggestions/1", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	AuthOptionalMiddleware()(c)

	assert.Equal(t, uint64(42), c.GetUint64("user_id"))
	got, ok := c.Request.Context().Value(consts.CtxUserIDKey).(uint64)
	require.True(t, ok)
	assert.Equal(t, uint64(42), got)
}

func TestAuthOptionalMiddlewareAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/suggestions/1", nil)

	AuthOptionalMiddleware()(c)

	assert.Equal(t, uint64(0), c.GetUint64("user_id"))
	assert.Nil(t, c.Request.Context().Value(consts.CtxUserIDKey))
}
