package middleware

import (
	"net/http"
	"net/http/httptest"
	"number_game/internal/domain"
	"number_game/internal/utils"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), CORS("http://localhost:3000"))
	ok := func(c *gin.Context) {
		id, role, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	}
	r.GET("/user", JWTAuthMiddleware(testSecret), RequireRole(domain.RoleUser), ok)
	r.GET("/admin", JWTAuthMiddleware(testSecret), AdminOnlyMiddleware(), ok)
	return r
}

func tokenFor(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := utils.GenerateJWT(7, role, testSecret)
	require.NoError(t, err)
	return token
}

func TestAuthAndRoleChecks(t *testing.T) {
	router := setupRouter()
	userToken := tokenFor(t, domain.RoleUser)
	adminToken := tokenFor(t, domain.RoleAdmin)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/user", "", http.StatusUnauthorized},
		{"not bearer", "/user", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "/user", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "/user", "Bearer garbage", http.StatusForbidden},
		{"user on user route", "/user", "Bearer " + userToken, http.StatusOK},
		{"admin on user route", "/user", "Bearer " + adminToken, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusOK},
		{"admin route without token", "/admin", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestTokenSignedWithOtherSecretIsForbidden(t *testing.T) {
	router := setupRouter()
	token, err := utils.GenerateJWT(7, domain.RoleAdmin, "someone-else")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := setupRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/user", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
