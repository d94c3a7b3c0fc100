package assessments

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jvdt-hub/backend/internal/definitions"
	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/middleware"
	"github.com/jvdt-hub/backend/internal/models"
	"github.com/jvdt-hub/backend/internal/scoring"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, log: logging.New("assessments")}
}

// RegisterRoutes wires the catalog and diagnostics on public and the
// per-user endpoints on protected.
func (h *Handler) RegisterRoutes(public, protected *mux.Router) {
	public.HandleFunc("/tests", h.ListTests).Methods("GET")
	public.HandleFunc("/tests/{id}", h.GetTest).Methods("GET")
	public.HandleFunc("/diagnostics/quick-code", h.QuickCode).Methods("POST")
	public.HandleFunc("/practices/recommendations", h.GetPractices).Methods("GET")

	protected.HandleFunc("/tests/{id}/progress", h.GetProgress).Methods("GET")
	protected.HandleFunc("/tests/{id}/progress", h.SaveProgress).Methods("PUT")
	protected.HandleFunc("/tests/{id}/progress", h.ClearProgress).Methods("DELETE")
	protected.HandleFunc("/tests/{id}/submit", h.Submit).Methods("POST")
	protected.HandleFunc("/tests/{id}/results", h.GetResults).Methods("GET")
	protected.HandleFunc("/history", h.GetHistory).Methods("GET")
}

// ── Catalog ─────────────────────────────────────────────

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	tests, err := h.service.Catalog(r.Context(), userID)
	if err != nil {
		h.log.Error("list tests failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list tests"})
		return
	}

	writeJSON(w, http.StatusOK, tests)
}

func (h *Handler) GetTest(w http.ResponseWriter, r *http.Request) {
	def, err := h.service.Definition(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test not found"})
		return
	}

	writeJSON(w, http.StatusOK, def)
}

// ── Submission ──────────────────────────────────────────

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	outcome, err := h.service.Submit(r.Context(), userID, mux.Vars(r)["id"], req)
	if errors.Is(err, definitions.ErrUnknownTest) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Could not complete assessment"})
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// ── Progress ────────────────────────────────────────────

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	p, err := h.service.Progress(r.Context(), userID, mux.Vars(r)["id"])
	if h.writeLookupError(w, err, "Failed to get progress") {
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No saved progress"})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.Progress
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.CurrentQuestion < 0 || req.TimeSpent < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "currentQuestion and timeSpent must not be negative"})
		return
	}

	p, err := h.service.SaveProgress(r.Context(), userID, mux.Vars(r)["id"], req)
	if h.writeLookupError(w, err, "Failed to save progress") {
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ClearProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	err := h.service.ClearProgress(r.Context(), userID, mux.Vars(r)["id"])
	if h.writeLookupError(w, err, "Failed to clear progress") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── Results & History ───────────────────────────────────

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	res, err := h.service.Results(r.Context(), userID, mux.Vars(r)["id"])
	if h.writeLookupError(w, err, "Failed to get results") {
		return
	}
	if res == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No results yet"})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	q := r.URL.Query()
	resp, err := h.service.History(r.Context(), userID, intQueryParam(q, "page", 1), intQueryParam(q, "page_size", 20))
	if err != nil {
		h.log.Error("get history failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get history"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ── Diagnostics ─────────────────────────────────────────

func (h *Handler) QuickCode(w http.ResponseWriter, r *http.Request) {
	var req models.QuickCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.QuickCode(req.Scores)
	if errors.Is(err, scoring.ErrScoreRange) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetPractices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	axis, stage := q.Get("axis"), q.Get("stage")
	if axis == "" || stage == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "axis and stage are required"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.Practices(axis, stage))
}

// ── Helpers ─────────────────────────────────────────────

// writeLookupError maps an unknown test to 404 and anything else to 500.
// It reports whether a response was written.
func (h *Handler) writeLookupError(w http.ResponseWriter, err error, msg string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, definitions.ErrUnknownTest):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test not found"})
	default:
		h.log.Error(msg, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msg})
	}
	return true
}

func intQueryParam(q url.Values, key string, def int) int {
	s := q.Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
