package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint("userID"),
			"role":   c.GetInt("userRole"),
		})
	})
	router.GET("/any", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func issueToken(t *testing.T, userID uint, role int) string {
	token, err := services.GenerateToken(services.UserInfo{UserId: userID, Role: role}, 60, true)
	assert.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareGuestOnAdminRoute(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 7, constants.RoleGuest))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareAdminAllowed(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 7, constants.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}

func TestAuthMiddlewareNoRoleRestriction(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, 7, constants.RoleGuest))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
