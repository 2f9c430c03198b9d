package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/shared/auth"
)

func newAuthRouter(t *testing.T, signer *auth.Signer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(signer))
	router.GET("/api/v1/chat", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserIDFromContext(c)})
	})
	hr := router.Group("/api/v1", RequireRole(auth.RoleHR))
	hr.POST("/resume/screen", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	router := newAuthRouter(t, auth.NewSigner("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthAnonymousPassesPublicRoute(t *testing.T) {
	router := newAuthRouter(t, auth.NewSigner("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRequireRoleRejectsAnonymous(t *testing.T) {
	router := newAuthRouter(t, auth.NewSigner("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := newAuthRouter(t, signer)

	token, err := signer.Sign("emp-1", auth.RoleEmployee)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestRequireRoleAcceptsHRToken(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := newAuthRouter(t, signer)

	token, err := signer.Sign("hr-1", auth.RoleHR)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	router := newAuthRouter(t, auth.NewSigner("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
