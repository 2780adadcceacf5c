package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCareer(t *testing.T, env *testEnv, token, titleEn, status string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"title":{"en":%q},"location":"Istanbul","status":%q}`, titleEn, status)
	w := env.do(t, http.MethodPost, "/api/careers/admin/posts", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post map[string]interface{}
	env.decode(t, w, &post)
	return post
}

func TestCareersPublicList_ActiveOnly(t *testing.T) {
	env := newTestEnv()
	token := env.adminToken(t)

	createCareer(t, env, token, "Interior Designer", "active")
	createCareer(t, env, token, "Old Position", "closed")

	w := env.do(t, http.MethodGet, "/api/careers/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	env.decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "active", list[0]["status"])

	// location is searchable on the public route
	w = env.do(t, http.MethodGet, "/api/careers/posts?search=istanbul", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	env.decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestCareers_DefaultsApplied(t *testing.T) {
	env := newTestEnv()
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/careers/admin/posts", `{"title":{"en":"Architect"}}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var post map[string]interface{}
	env.decode(t, w, &post)
	assert.Equal(t, "active", post["status"])
	assert.Equal(t, "full-time", post["job_type"])
}

func TestCareersAdmin_CRUD(t *testing.T) {
	env := newTestEnv()
	token := env.adminToken(t)
	created := createCareer(t, env, token, "Site Engineer", "active")
	id := created["id"].(string)

	w := env.do(t, http.MethodGet, "/api/careers/admin/posts/"+id, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	body := `{"title":{"en":"Senior Site Engineer"},"status":"closed","salary":"negotiable"}`
	w = env.do(t, http.MethodPut, "/api/careers/admin/posts/"+id, body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]interface{}
	env.decode(t, w, &updated)
	assert.Equal(t, "closed", updated["status"])
	assert.Equal(t, "negotiable", updated["salary"])

	w = env.do(t, http.MethodDelete, "/api/careers/admin/posts/"+id, "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodDelete, "/api/careers/admin/posts/"+id, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCareersAdmin_RequiresAuth(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/api/careers/admin/posts", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
