package screening

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"hr-backend/internal/jobs"
	"hr-backend/internal/parsing"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<w:document><w:body>" + body.String() + "</w:body></w:document>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func sampleResumeBase64(t *testing.T) string {
	t.Helper()
	data := buildDocx(t,
		"John Smith",
		"john.smith@example.com | +1 555 123 4567",
		"Skills: Python, SQL, JavaScript, Git",
		"Bachelor of Science in Computer Science, State University",
		"5 years of experience in software development",
		"Software Engineer at Acme Technologies Inc",
	)
	return base64.StdEncoding.EncodeToString(data)
}

func newTestService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	jobRepo := jobs.NewMemoryRepo()
	if err := jobRepo.Create(context.Background(), jobs.Record{
		ID:          "job-1",
		Title:       "Backend Engineer",
		Department:  "IT",
		Description: "We need 3 years of experience with Python and SQL.",
		Skills:      jobs.StringList{"Python", "SQL", "Kubernetes"},
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	repo := NewMemoryRepo()
	return &Service{
		Parser: parsing.NewParser(nil),
		Jobs:   &jobs.Service{Repo: jobRepo},
		Repo:   repo,
	}, repo
}

type stubEnricher struct {
	out  Enrichment
	err  error
	used bool
}

func (s *stubEnricher) Enrich(context.Context, parsing.ParsedResume, jobs.Profile) (Enrichment, error) {
	s.used = true
	return s.out, s.err
}

func TestScreenRejectsMalformedBase64(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   "%%%not-base64%%%",
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScreenEndToEnd(t *testing.T) {
	svc, repo := newTestService(t)

	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}

	if !report.Success || report.Status != StatusCompleted {
		t.Fatalf("status = %s success = %v error = %q", report.Status, report.Success, report.Error)
	}
	if report.FallbackJobProfile {
		t.Error("known job should not use the fallback profile")
	}
	if report.JobTitle != "Backend Engineer" {
		t.Errorf("job title = %q", report.JobTitle)
	}
	if report.OverallScore <= 0 || report.OverallScore > 100 {
		t.Errorf("overall score = %v", report.OverallScore)
	}
	if report.Rating == "" || report.Recommendation == "" {
		t.Errorf("rating = %q recommendation = %q", report.Rating, report.Recommendation)
	}
	if report.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	// Matched and missing must partition the required set.
	got := len(report.SkillAnalysis.MatchedRequired) + len(report.SkillAnalysis.MissingRequired)
	if got != 3 {
		t.Errorf("matched+missing = %d, want 3 (%v / %v)",
			got, report.SkillAnalysis.MatchedRequired, report.SkillAnalysis.MissingRequired)
	}

	stored, err := repo.GetByID(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if stored.Status != StatusCompleted {
		t.Errorf("stored status = %s", stored.Status)
	}
}

func TestScreenUnknownJobFallsBack(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "no-such-job",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if !report.FallbackJobProfile {
		t.Error("expected fallback profile flag")
	}
	if !report.Success {
		t.Errorf("fallback screening should still succeed, error = %q", report.Error)
	}
}

func TestScreenExtractionFailureYieldsFailedReport(t *testing.T) {
	svc, repo := newTestService(t)

	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   base64.StdEncoding.EncodeToString([]byte("plain text, not a document")),
		ResumeFilename: "resume.txt",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("pipeline failures must not surface as errors, got %v", err)
	}
	if report.Success || report.Status != StatusFailed {
		t.Fatalf("status = %s success = %v", report.Status, report.Success)
	}
	if report.Error == "" {
		t.Error("failed report should carry the failure reason")
	}
	if _, err := repo.GetByID(context.Background(), report.ID); err != nil {
		t.Errorf("failed report not persisted: %v", err)
	}
}

func TestScreenEnrichmentOverridesScores(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Enricher = &stubEnricher{out: Enrichment{
		ComponentScores: ComponentScores{Education: 91, Experience: 92, Domain: 93, Language: 94, SkillMatch: 95},
		SkillAnalysis: SkillAnalysis{
			MatchedRequired:    []string{"Python", "SQL"},
			MissingRequired:    []string{"Kubernetes"},
			AllCandidateSkills: []string{"Python", "SQL", "JavaScript", "Git"},
		},
		OverallScore:   88,
		Assessment:     "Strong technical background",
		Strengths:      []string{"Solid fundamentals"},
		Weaknesses:     []string{"No container experience"},
		Recommendation: "Recommended",
	}}

	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if !report.AIEnriched {
		t.Fatal("expected AI enrichment")
	}
	if report.OverallScore != 88 {
		t.Errorf("overall score = %v, want 88", report.OverallScore)
	}
	if report.ComponentScores.SkillMatch != 95 {
		t.Errorf("skill match = %v, want 95", report.ComponentScores.SkillMatch)
	}
	if report.Assessment != "Strong technical background" {
		t.Errorf("assessment = %q", report.Assessment)
	}
	if report.Recommendation != "Recommended" {
		t.Errorf("recommendation = %q", report.Recommendation)
	}
	if report.Rating != "Excellent Candidate" {
		t.Errorf("rating = %q", report.Rating)
	}
}

func TestScreenEnrichmentFailureKeepsDeterministicResult(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Enricher = &stubEnricher{err: errors.New("provider down")}

	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
	})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if report.AIEnriched {
		t.Error("failed enrichment must not mark the report enriched")
	}
	if !report.Success || report.Status != StatusCompleted {
		t.Errorf("status = %s success = %v", report.Status, report.Success)
	}
}

func TestScreenAIDisabledSkipsEnricher(t *testing.T) {
	svc, _ := newTestService(t)
	enricher := &stubEnricher{out: Enrichment{OverallScore: 99}}
	svc.Enricher = enricher

	off := false
	report, err := svc.Screen(context.Background(), Request{
		ResumeBase64:   sampleResumeBase64(t),
		ResumeFilename: "resume.docx",
		JobID:          "job-1",
		CandidateName:  "John Smith",
		EnableAI:       &off,
	})
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	if enricher.used {
		t.Error("enricher called with AI disabled")
	}
	if report.AIEnriched {
		t.Error("report marked enriched with AI disabled")
	}
}

func TestCombineOverallKeepsBetterComposite(t *testing.T) {
	high := ComponentScores{Education: 100, Experience: 100, Domain: 100, Language: 100, SkillMatch: 100}
	if got := combineOverall(50, high); got != 100 {
		t.Errorf("combineOverall(50, all-100) = %v, want 100", got)
	}
	low := ComponentScores{Education: 10, Experience: 10, Domain: 10, Language: 10, SkillMatch: 10}
	if got := combineOverall(90, low); got != 90 {
		t.Errorf("combineOverall(90, all-10) = %v, want 90", got)
	}
}
