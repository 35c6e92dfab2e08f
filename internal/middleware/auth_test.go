package middleware

import (
	"flagguard_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", AdminAuthMiddleware(testSecret)...)
	admin.GET("/ping", func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).Username)
	})
	return r
}

func request(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := newAdminRouter()

	admin, err := util.GenerateJWT("admin", util.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	viewer, err := util.GenerateJWT("viewer", "viewer", testSecret, time.Hour)
	require.NoError(t, err)
	forged, err := util.GenerateJWT("admin", util.RoleAdmin, "other-secret", time.Hour)
	require.NoError(t, err)
	expired, err := util.GenerateJWT("admin", util.RoleAdmin, testSecret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		want          int
	}{
		{name: "admin", authorization: "Bearer " + admin, want: http.StatusOK},
		{name: "missing header", authorization: "", want: http.StatusUnauthorized},
		{name: "no bearer prefix", authorization: admin, want: http.StatusUnauthorized},
		{name: "wrong role", authorization: "Bearer " + viewer, want: http.StatusForbidden},
		{name: "wrong secret", authorization: "Bearer " + forged, want: http.StatusUnauthorized},
		{name: "expired", authorization: "Bearer " + expired, want: http.StatusUnauthorized},
		{name: "garbage", authorization: "Bearer not-a-token", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, r, tt.authorization)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRoleMiddlewareWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", RoleMiddleware(util.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := request(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
