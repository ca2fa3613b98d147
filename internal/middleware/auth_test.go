package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UserIDFromContext(c), "role": RoleFromContext(c)})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := setupRouter(RequireAuth(testSecret))

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRequireAuth_BadToken(t *testing.T) {
	r := setupRouter(RequireAuth(testSecret))

	w := doRequest(r, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_StoresIdentity(t *testing.T) {
	token, err := service.GenerateToken(&model.User{ID: 5, Name: "A", Role: model.RoleAdmin}, testSecret)
	require.NoError(t, err)
	r := setupRouter(RequireAuth(testSecret))

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":5`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireAdmin_RejectsCandidate(t *testing.T) {
	token, err := service.GenerateToken(&model.User{ID: 6, Role: model.RoleCandidate}, testSecret)
	require.NoError(t, err)
	r := setupRouter(RequireAuth(testSecret), RequireAdmin())

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	token, err := service.GenerateToken(&model.User{ID: 7, Role: model.RoleAdmin}, testSecret)
	require.NoError(t, err)
	r := setupRouter(RequireAuth(testSecret), RequireAdmin())

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}
