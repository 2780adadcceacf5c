package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ahmedkhaled2030/bedir-group/internal/blog"
	"github.com/ahmedkhaled2030/bedir-group/internal/careers"
	"github.com/ahmedkhaled2030/bedir-group/internal/config"
	"github.com/ahmedkhaled2030/bedir-group/internal/contact"
	"github.com/ahmedkhaled2030/bedir-group/internal/images"
	"github.com/ahmedkhaled2030/bedir-group/internal/users"
	"github.com/ahmedkhaled2030/bedir-group/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the full API against in-memory repositories, mirroring the
// route setup in main.go.
type testEnv struct {
	router  *gin.Engine
	cfg     *config.Config
	users   *users.MemoryRepository
	blog    *blog.MemoryRepository
	careers *careers.MemoryRepository
	contact *contact.MemoryRepository
	images  *images.MemoryRepository
}

func newTestEnv() *testEnv {
	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret-32-bytes-long"
	cfg.JWT.AccessTokenTTL = time.Hour
	cfg.Upload.MaxSize = 10 << 20

	env := &testEnv{
		cfg:     cfg,
		users:   users.NewMemoryRepository(),
		blog:    blog.NewMemoryRepository(),
		careers: careers.NewMemoryRepository(),
		contact: contact.NewMemoryRepository(),
		images:  images.NewMemoryRepository(),
	}

	authn := middleware.RequireAuth(cfg.JWT.Secret, env.users)
	admin := middleware.RequireAdmin()

	r := gin.New()
	api := r.Group("/api")
	NewAuthHandler(cfg, users.NewService(env.users)).Register(api, authn)
	NewBlogHandler(cfg, blog.NewService(env.blog), env.images).Register(api, authn, admin)
	NewCareersHandler(env.careers).Register(api, authn, admin)
	NewContactHandler(env.contact).Register(api, authn, admin)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

type tokenResponse struct {
	AccessToken string                 `json:"access_token"`
	TokenType   string                 `json:"token_type"`
	User        map[string]interface{} `json:"user"`
}

// register creates an account through the API and returns its token payload.
// The first account per env is the admin.
func (e *testEnv) register(t *testing.T, email, name string) tokenResponse {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"name":%q,"password":"secret123"}`, email, name)
	w := e.do(t, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp tokenResponse
	e.decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	return e.register(t, "admin@example.com", "Site Admin").AccessToken
}

// multipartBody builds a single-file multipart form with an explicit part
// content type, as browsers send it.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &b, w.FormDataContentType()
}
