package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/content/domain"
)

func (h *Handler) listSkills(c *gin.Context) {
	items, err := h.content.ListSkills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skills": items})
}

func (h *Handler) getSkill(c *gin.Context) {
	sk, err := h.content.GetSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skill": sk})
}

func (h *Handler) createSkill(c *gin.Context) {
	var in domain.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sk, err := h.content.CreateSkill(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "skill": sk})
}

func (h *Handler) updateSkill(c *gin.Context) {
	var in domain.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sk, err := h.content.UpdateSkill(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skill": sk})
}

func (h *Handler) deleteSkill(c *gin.Context) {
	if err := h.content.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
