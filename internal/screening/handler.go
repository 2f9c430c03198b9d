package screening

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/server/respond"
)

// Handler exposes resume screening endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches screening routes to the router group. The group is
// expected to be HR-gated.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/screen", h.screen)
	rg.GET("/resume/screenings/:id", h.get)
	rg.GET("/resume/screenings", h.listByJob)
}

func (h *Handler) screen(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "resume_base64, resume_filename, job_id and candidate_name are required", nil)
		return
	}

	report, err := h.Svc.Screen(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "screening failed", nil)
		return
	}

	// Pipeline failures past input validation still return the report so the
	// caller can inspect the error field and status.
	respond.OK(c, report)
}

func (h *Handler) get(c *gin.Context) {
	report, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "screening not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch screening", nil)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) listByJob(c *gin.Context) {
	jobID := c.Query("job_id")
	if jobID == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "job_id query parameter is required", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := h.Svc.Repo.ListByJob(c.Request.Context(), jobID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list screenings", nil)
		return
	}
	if reports == nil {
		reports = []Report{}
	}
	respond.OK(c, gin.H{"job_id": jobID, "screenings": reports})
}
