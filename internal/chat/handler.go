package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/server/respond"
)

// Handler exposes the chat endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "user_id and query are required", nil)
		return
	}

	reply := h.Svc.Process(c.Request.Context(), req.UserID, req.Query, req.SessionID)
	respond.OK(c, reply)
}
