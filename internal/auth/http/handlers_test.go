package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/favourop/portfolio-backend/config"
	"github.com/favourop/portfolio-backend/internal/auth/service"
	"github.com/favourop/portfolio-backend/internal/auth/session"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "correct horse battery staple"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		Mode:              "session",
		AdminEmail:        adminEmail,
		AdminPasswordHash: string(hash),
		SessionTTL:        time.Hour,
	}

	sessions := session.NewStore(client, cfg.SessionTTL)
	handler := NewHandler(service.NewAuthService(cfg, sessions))

	r := gin.New()
	handler.Register(r.Group("/api/v1/auth"), session.NewAuthorizer(sessions))
	return r
}

func postLogin(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := newTestRouter(t)

	w := postLogin(r, adminEmail, adminPassword)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, adminEmail, body.User.Email)
	assert.Equal(t, "admin", body.User.Role)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, body.Token, cookies[0].Value)
}

func TestLogin_Failures(t *testing.T) {
	r := newTestRouter(t)

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(r, adminEmail, "nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := postLogin(r, "other@example.com", adminPassword)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postLogin(r, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMe_WithSessionToken(t *testing.T) {
	r := newTestRouter(t)

	w := postLogin(r, adminEmail, adminPassword)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("rejects a bogus token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogout_RevokesSession(t *testing.T) {
	r := newTestRouter(t)

	w := postLogin(r, adminEmail, adminPassword)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
