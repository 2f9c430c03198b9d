package screening

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/jobs"
	"hr-backend/internal/parsing"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jobRepo := jobs.NewMemoryRepo()
	if err := jobRepo.Create(context.Background(), jobs.Record{
		ID:     "job-1",
		Title:  "Backend Engineer",
		Skills: jobs.StringList{"Python", "SQL"},
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	repo := NewMemoryRepo()
	handler := NewHandler(&Service{
		Parser: parsing.NewParser(nil),
		Jobs:   &jobs.Service{Repo: jobRepo},
		Repo:   repo,
	})

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, repo
}

func TestScreenEndpointMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", strings.NewReader(`{"job_id":"job-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestScreenEndpointBadBase64(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"resume_base64":"%%%","resume_filename":"resume.docx","job_id":"job-1","candidate_name":"John Smith"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	var errBody struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Error.Code != "invalid_input" {
		t.Errorf("error code = %q", errBody.Error.Code)
	}
}

func TestScreenEndpointReturnsReport(t *testing.T) {
	router, _ := newTestRouter(t)

	payload, err := json.Marshal(Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/screen", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}
	var report Report
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Status != StatusCompleted || !report.Success {
		t.Errorf("status = %s success = %v", report.Status, report.Success)
	}
	if report.CandidateName != "John Smith" {
		t.Errorf("candidate = %q", report.CandidateName)
	}
}

func TestGetScreeningNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume/screenings/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestListScreeningsByJob(t *testing.T) {
	router, repo := newTestRouter(t)

	for i, id := range []string{"scr-1", "scr-2"} {
		report := Report{
			ID:        id,
			JobID:     "job-1",
			Status:    StatusCompleted,
			Success:   true,
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(context.Background(), report); err != nil {
			t.Fatalf("seed report: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume/screenings?job_id=job-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var out struct {
		JobID      string   `json:"job_id"`
		Screenings []Report `json:"screenings"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out.Screenings) != 2 {
		t.Fatalf("screenings = %d, want 2", len(out.Screenings))
	}
	if out.Screenings[0].ID != "scr-2" {
		t.Errorf("newest first expected, got %q", out.Screenings[0].ID)
	}
}

func TestListScreeningsRequiresJobID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume/screenings", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
