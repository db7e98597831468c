package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/auth"
	"github.com/favourop/portfolio-backend/internal/auth/middleware"
	"github.com/favourop/portfolio-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
}

func NewHandler(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

// Register attaches auth routes to the given router group. The "me" route
// is gated so the admin UI can probe whether its token is still valid.
func (h *Handler) Register(rg *gin.RouterGroup, authorizer auth.Authorizer) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
	rg.GET("/me", middleware.RequireAuth(authorizer), h.me)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	token, principal, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "login failed"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": principal})
}

func (h *Handler) logout(c *gin.Context) {
	token := ""
	if bearer := c.GetHeader("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		token = bearer[7:]
	} else if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		token = cookie
	}

	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "logout failed"})
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": auth.PrincipalFrom(c)})
}
