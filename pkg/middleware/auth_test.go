package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
	"github.com/ahmedkhaled2030/bedir-group/internal/tokens"
	"github.com/ahmedkhaled2030/bedir-group/internal/users"
)

const testSecret = "middleware-test-secret-32-bytes!"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T, role string) (*gin.Engine, *models.User) {
	t.Helper()
	repo := users.NewMemoryRepository()
	u, err := repo.Create(context.Background(), &models.User{
		ID:    primitive.NewObjectID(),
		Email: "user@example.com",
		Name:  "User",
		Role:  role,
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAuth(testSecret, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	r.GET("/admin", RequireAuth(testSecret, repo), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, u
}

func get(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t, models.RoleUser)
	w := get(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r, u := newAuthRouter(t, models.RoleUser)
	token, err := tokens.GenerateAccessToken(testSecret, u.ID.Hex(), time.Hour)
	require.NoError(t, err)

	for _, header := range []string{"Bearer", "Bearer ", "Basic " + token, token} {
		w := get(r, "/me", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r, u := newAuthRouter(t, models.RoleUser)
	token, err := tokens.GenerateAccessToken(testSecret, u.ID.Hex(), -time.Minute)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UnknownSubject(t *testing.T) {
	r, _ := newAuthRouter(t, models.RoleUser)
	token, err := tokens.GenerateAccessToken(testSecret, primitive.NewObjectID().Hex(), time.Hour)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, u := newAuthRouter(t, models.RoleUser)
	token, err := tokens.GenerateAccessToken(testSecret, u.ID.Hex(), time.Hour)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), u.Email)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	r, u := newAuthRouter(t, models.RoleUser)
	token, err := tokens.GenerateAccessToken(testSecret, u.ID.Hex(), time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	r, u := newAuthRouter(t, models.RoleAdmin)
	token, err := tokens.GenerateAccessToken(testSecret, u.ID.Hex(), time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
