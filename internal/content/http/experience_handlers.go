package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/content/domain"
)

func (h *Handler) listExperience(c *gin.Context) {
	items, err := h.content.ListExperience(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": items})
}

func (h *Handler) getExperience(c *gin.Context) {
	e, err := h.content.GetExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": e})
}

func (h *Handler) createExperience(c *gin.Context) {
	var in domain.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.content.CreateExperience(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "experience": e})
}

func (h *Handler) updateExperience(c *gin.Context) {
	var in domain.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.content.UpdateExperience(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": e})
}

func (h *Handler) deleteExperience(c *gin.Context) {
	if err := h.content.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
