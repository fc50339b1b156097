package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/underwriting-service/internal/middleware"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/report"
	"github.com/Dan9191/underwriting-service/internal/repository"
	"github.com/Dan9191/underwriting-service/internal/service"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxBatch bounds the number of properties accepted by one batch request
const maxBatch = 100

// Underwriter is the part of the service exposed over HTTP
type Underwriter interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Analyze(ctx context.Context, req service.AnalyzeRequest) (*models.Analysis, error)
	AnalyzeBatch(ctx context.Context, reqs []service.AnalyzeRequest) ([]service.BatchItem, error)
	GetAnalysis(ctx context.Context, id string) (*models.Analysis, error)
	Portfolio(ctx context.Context) (models.PortfolioSummary, error)
}

// Handler serves the underwriting HTTP API
type Handler struct {
	svc Underwriter
	log *logrus.Logger
}

// NewHandler creates a handler backed by svc
func NewHandler(svc Underwriter, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type batchRequest struct {
	Properties []service.AnalyzeRequest `json:"properties"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Analyze underwrites a single property
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	a, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// AnalyzeBatch underwrites several properties in one request
func (h *Handler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Properties) == 0 || len(req.Properties) > maxBatch {
		http.Error(w, "Batch must contain between 1 and 100 properties", http.StatusBadRequest)
		return
	}
	items, err := h.svc.AnalyzeBatch(r.Context(), req.Properties)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": items})
}

// GetAnalysis returns a stored analysis
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAnalysis(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GetAnalysisXML exports a stored analysis as XML
func (h *Handler) GetAnalysisXML(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAnalysis(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data, err := report.ExportXML(a)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Portfolio summarizes the latest analysis of every property
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Portfolio(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, underwriting.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate):
		status = http.StatusConflict
	}

	entry := h.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "status": status})
	if user, ok := middleware.UserID(r.Context()); ok {
		entry = entry.WithField("user_id", user)
	}
	if status == http.StatusInternalServerError {
		entry.Errorf("Request failed: %v", err)
		http.Error(w, "Internal server error", status)
		return
	}
	entry.Infof("Request rejected: %v", err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
