package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/server/respond"
)

// Handler exposes job-description endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches JD routes to the router group. The group is
// expected to be HR-gated for generation.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jd/generate", h.generate)
	rg.GET("/jd/:id", h.get)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "role is required", nil)
		return
	}

	rec, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate job description", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, rec)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "job description not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job description", nil)
		return
	}
	respond.OK(c, rec)
}
