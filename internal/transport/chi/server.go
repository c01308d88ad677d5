package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/carelinkgh/carematch/internal/domain"
	"github.com/carelinkgh/carematch/internal/domain/match"
	"github.com/carelinkgh/carematch/internal/domain/profile"
	healthuc "github.com/carelinkgh/carematch/internal/usecase/health"
)

// Error response codes.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeUnauthorized      = "unauthorized"
	codeForbidden         = "forbidden"
	codePatientNotFound   = "patient_not_found"
	codeCaregiverNotFound = "caregiver_not_found"
	codeInternalError     = "internal_error"
)

// Matcher ranks caregivers for a patient.
type Matcher interface {
	Match(ctx context.Context, patientID string, minScore float64) ([]match.Match, error)
}

// ProfileStore reads and writes patient and caregiver records.
type ProfileStore interface {
	GetPatient(ctx context.Context, id string) (profile.Patient, error)
	PutPatient(ctx context.Context, p *profile.Patient) error
	GetCaregiver(ctx context.Context, id string) (profile.Caregiver, error)
	PutCaregiver(ctx context.Context, c *profile.Caregiver) error
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the carematch HTTP API.
type Server struct {
	matcher       Matcher
	profiles      ProfileStore
	health        *healthuc.Service
	urls          *URLBuilder
	logger        *zap.Logger
	minScore      float64
	maxLimit      int
	errorHandlers []errorHandler
}

// Config holds server settings.
type Config struct {
	Matcher  Matcher
	Profiles ProfileStore
	Health   *healthuc.Service
	URLs     *URLBuilder
	Logger   *zap.Logger
	MinScore float64 // default score floor for /matches
	MaxLimit int     // cap on the limit query parameter
}

// NewServer creates an HTTP API server.
func NewServer(cfg Config) *Server {
	s := &Server{
		matcher:  cfg.Matcher,
		profiles: cfg.Profiles,
		health:   cfg.Health,
		urls:     cfg.URLs,
		logger:   cfg.Logger,
		minScore: cfg.MinScore,
		maxLimit: cfg.MaxLimit,
	}
	if s.urls == nil {
		s.urls = NewURLBuilder("")
	}
	if s.maxLimit <= 0 {
		s.maxLimit = 100
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPatientNotFound, http.StatusNotFound, codePatientNotFound),
		sentinelHandler(domain.ErrCaregiverNotFound, http.StatusNotFound, codeCaregiverNotFound),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, codeForbidden),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/matches", s.GetMatches)
		r.Get("/patients/{id}", s.GetPatient)
		r.Put("/patients/{id}", s.PutPatient)
		r.Get("/caregivers/{id}", s.GetCaregiver)
		r.Put("/caregivers/{id}", s.PutCaregiver)
	})
}

// GetMatches handles GET /api/v1/matches.
// Patient principals match against their own record; admins pass patient_id.
func (s *Server) GetMatches(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, codeForbidden, "no principal")
		return
	}

	var patientID string
	switch p.Role {
	case RolePatient:
		patientID = p.PatientID
	case RoleAdmin:
		patientID = r.URL.Query().Get("patient_id")
	default:
		writeError(w, http.StatusForbidden, codeForbidden, "matching requires a patient or admin principal")
		return
	}
	if patientID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "patient identity could not be resolved")
		return
	}

	minScore := s.minScore
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "min_score must be a number between 0 and 1")
			return
		}
		minScore = v
	}

	limit := s.maxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
		if v < limit {
			limit = v
		}
	}

	matches, err := s.matcher.Match(r.Context(), patientID, minScore)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	total := len(matches)
	// Truncation happens after ranking so limit never changes scores or order.
	if len(matches) > limit {
		matches = matches[:limit]
	}

	items := make([]matchItem, len(matches))
	for i := range matches {
		items[i] = s.matchToItem(&matches[i])
	}

	writeJSON(w, http.StatusOK, matchListResponse{
		Items: items,
		Total: total,
	})
}

// GetPatient handles GET /api/v1/patients/{id}.
func (s *Server) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := PrincipalFromContext(r.Context())
	if !ok || (p.Role != RoleAdmin && p.PatientID != id) {
		writeError(w, http.StatusForbidden, codeForbidden, "not allowed to read this patient")
		return
	}

	patient, err := s.profiles.GetPatient(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.patientToResponse(&patient))
}

// PutPatient handles PUT /api/v1/patients/{id} (admin only).
func (s *Server) PutPatient(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	var req patientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.FullName == "" || req.Condition == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "fullName and condition are required")
		return
	}

	patient := profile.NewPatient(
		chi.URLParam(r, "id"), req.FullName, req.Condition, req.Years, req.Schedule,
		req.Description, req.Special, req.MedicalHistory, req.Location, req.PhotoPath,
	)
	if err := s.profiles.PutPatient(r.Context(), &patient); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.patientToResponse(&patient))
}

// GetCaregiver handles GET /api/v1/caregivers/{id} (admin only).
func (s *Server) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	caregiver, err := s.profiles.GetCaregiver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.caregiverToResponse(&caregiver))
}

// PutCaregiver handles PUT /api/v1/caregivers/{id} (admin only).
func (s *Server) PutCaregiver(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	var req caregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.FullName == "" || req.ProfileType == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "fullName and type are required")
		return
	}

	quals := make([]profile.Qualification, 0, len(req.Qualifications))
	for _, q := range req.Qualifications {
		quals = append(quals, profile.NewQualification(q.Title, q.FilePath))
	}

	caregiver := profile.NewCaregiver(
		chi.URLParam(r, "id"), req.FullName, req.ProfileType, req.Bio,
		req.EducationLevel, req.Schedule, req.Location, quals,
		req.PhotoPath, req.DocumentPath, req.Active, req.Available, req.Verified,
	)
	if err := s.profiles.PutCaregiver(r.Context(), &caregiver); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.caregiverToResponse(&caregiver))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	p, ok := PrincipalFromContext(r.Context())
	if !ok || p.Role != RoleAdmin {
		writeError(w, http.StatusForbidden, codeForbidden, "admin access required")
		return false
	}
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrPatientNotFound,
		domain.ErrCaregiverNotFound,
		domain.ErrInvalidInput,
		domain.ErrForbidden,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
