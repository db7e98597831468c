package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favourop/portfolio-backend/internal/auth"
)

type fakeAuthorizer struct {
	token     string
	principal *auth.Principal
}

func (f fakeAuthorizer) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	if token != f.token {
		return nil, auth.ErrUnauthenticated
	}
	return f.principal, nil
}

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authorizer := fakeAuthorizer{
		token:     "good",
		principal: &auth.Principal{ID: "admin", Email: "admin@example.com"},
	}

	r := gin.New()
	r.GET("/secret", RequireAuth(authorizer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "user": auth.PrincipalFrom(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newGatedRouter()

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@example.com")
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
