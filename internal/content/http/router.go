package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/auth"
	"github.com/favourop/portfolio-backend/internal/auth/middleware"
	"github.com/favourop/portfolio-backend/internal/content/domain"
	"github.com/favourop/portfolio-backend/internal/content/service"
)

type Handler struct {
	content *service.ContentService
}

func NewHandler(content *service.ContentService) *Handler {
	return &Handler{content: content}
}

// Register attaches the content routes to the given router group. Reads
// are public; every mutating route passes the authorization gate before it
// can touch storage.
func (h *Handler) Register(rg *gin.RouterGroup, authorizer auth.Authorizer) {
	gate := middleware.RequireAuth(authorizer)

	projects := rg.Group("/projects")
	projects.GET("", h.listProjects)
	projects.GET("/:id", h.getProject)
	projects.POST("", gate, h.createProject)
	projects.PUT("/:id", gate, h.updateProject)
	projects.DELETE("/:id", gate, h.deleteProject)

	skills := rg.Group("/skills")
	skills.GET("", h.listSkills)
	skills.GET("/:id", h.getSkill)
	skills.POST("", gate, h.createSkill)
	skills.PUT("/:id", gate, h.updateSkill)
	skills.DELETE("/:id", gate, h.deleteSkill)

	experience := rg.Group("/experience")
	experience.GET("", h.listExperience)
	experience.GET("/:id", h.getExperience)
	experience.POST("", gate, h.createExperience)
	experience.PUT("/:id", gate, h.updateExperience)
	experience.DELETE("/:id", gate, h.deleteExperience)

	rg.GET("/stats", gate, h.stats)
}

// writeError maps service errors onto the status convention: 400 for
// validation, 404 for unresolved ids, 500 for anything the storage layer
// reported. Storage details are logged, never returned.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	default:
		log.Printf("storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "storage error"})
	}
}

func (h *Handler) stats(c *gin.Context) {
	counts, err := h.content.Counts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "counts": counts})
}
