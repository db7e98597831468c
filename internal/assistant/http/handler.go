package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/assistant"
)

type Handler struct {
	service *assistant.Service
}

func NewHandler(service *assistant.Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the assistant route. The route is public but rate
// limited; it always answers 200 once a question is present.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/ai-assistant", RateLimit(defaultRate, defaultBurst), h.ask)
}

type askReq struct {
	Question            string              `json:"question"`
	ConversationHistory []assistant.Message `json:"conversationHistory"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "question is required"})
		return
	}

	answer := h.service.Ask(c.Request.Context(), strings.TrimSpace(req.Question), req.ConversationHistory)
	c.JSON(http.StatusOK, gin.H{"ok": true, "answer": answer})
}
