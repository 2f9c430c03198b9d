package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/auth"
	"hr-backend/internal/shared/server/middleware"
	"hr-backend/internal/shared/server/respond"
)

type tokenRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// registerAuthRoutes attaches token issuance and identity echo endpoints.
// Token issuance is a stand-in for an upstream identity provider.
func registerAuthRoutes(rg *gin.RouterGroup, signer *auth.Signer) {
	rg.POST("/auth/token", func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "user_id and role are required", nil)
			return
		}
		token, err := signer.Sign(req.UserID, req.Role)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
			return
		}
		respond.OK(c, gin.H{"token": token, "role": req.Role})
	})

	rg.GET("/me", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		respond.OK(c, gin.H{"userId": userID, "role": middleware.RoleFromContext(c)})
	})
}
