package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// maxUploadSize caps the parsed size of multipart uploads (10 MiB).
const maxUploadSize = 10 << 20

// maxBatchFiles caps how many documents one batch request may carry.
const maxBatchFiles = 20

var validate = validator.New()

// MatchRequest represents the request body for /match
type MatchRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	RequiredYears  *int   `json:"required_years,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the request fields.
func (r *MatchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// CompareRequest represents the request body for /compare
type CompareRequest struct {
	Resumes        map[string]string `json:"resumes" validate:"required,min=2,dive,required"`
	JobDescription string            `json:"job_description" validate:"required,min=1"`
	RequiredYears  *int              `json:"required_years,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the request fields.
func (r *CompareRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts the first validator failure into a typed error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &ErrValidation{Field: first.Field(), Message: "failed " + first.Tag() + " check"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}

// handleAnalyze analyzes one uploaded resume document. The multipart form
// carries the document under "resume" and an optional comma-separated
// "keywords" field with required job keywords.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload: "+err.Error())
		return
	}

	analysis, err := s.analyzer.AnalyzeDocument(data, header.Filename, parseKeywords(r.FormValue("keywords")))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleBatchAnalyze analyzes several uploaded documents in one request.
// Files are carried under the repeated "resumes" field; failures are
// reported per file.
func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	headers := r.MultipartForm.File["resumes"]
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No resume files provided")
		return
	}
	if len(headers) > maxBatchFiles {
		err := &ErrTooManyFiles{Count: len(headers), Limit: maxBatchFiles}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	docs := make([]analyzer.Document, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to open upload: "+err.Error())
			return
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload: "+err.Error())
			return
		}
		docs = append(docs, analyzer.Document{Filename: header.Filename, Data: data})
	}

	items := s.analyzer.BatchAnalyze(r.Context(), docs, parseKeywords(r.FormValue("keywords")))
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": items})
}

// handleMatch scores a resume against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.analyzer.MatchJob(req.ResumeText, req.JobDescription, req.RequiredYears)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleCompare ranks multiple candidates against one job description.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	ranked, err := s.analyzer.CompareCandidates(r.Context(), req.Resumes, req.JobDescription, req.RequiredYears)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": ranked})
}

// handleListSkills returns the skill catalog, optionally filtered by the
// "category" query parameter.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	cat := s.analyzer.Catalog()

	if category := r.URL.Query().Get("category"); category != "" {
		names := cat.CategorySkills(category)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"category": category,
			"skills":   names,
			"count":    len(names),
		})
		return
	}

	records := cat.Records()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": records,
		"count":  len(records),
	})
}

// handleListCategories returns skill counts per catalog category.
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.analyzer.Catalog().Categories()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

// parseKeywords splits a comma-separated keyword list, dropping blanks.
func parseKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
