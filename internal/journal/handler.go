package journal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/middleware"
	"github.com/jvdt-hub/backend/internal/models"
)

type Handler struct {
	journal *Journal
	log     *slog.Logger
}

func NewHandler(j *Journal) *Handler {
	return &Handler{journal: j, log: logging.New("journal")}
}

func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/journal/entries", h.ListEntries).Methods("GET")
	protected.HandleFunc("/journal/entries", h.AddEntry).Methods("POST")
	protected.HandleFunc("/journal/entries", h.ClearEntries).Methods("DELETE")
	protected.HandleFunc("/journal/draft", h.GetDraft).Methods("GET")
	protected.HandleFunc("/journal/draft", h.SaveDraft).Methods("PUT")
	protected.HandleFunc("/journal/draft", h.ClearDraft).Methods("DELETE")
	protected.HandleFunc("/journal/tags", h.Tags).Methods("POST")
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	entries, err := h.journal.Entries(r.Context(), userID)
	if err != nil {
		h.log.Error("list entries failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load journal"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	entry, err := h.journal.Add(r.Context(), userID, req.Text)
	if errors.Is(err, ErrEmptyEntry) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Entry text is required"})
		return
	}
	if err != nil {
		h.log.Error("add entry failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save entry"})
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.journal.Clear(r.Context(), userID); err != nil {
		h.log.Error("clear journal failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to clear journal"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── Draft ───────────────────────────────────────────────

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	text, err := h.journal.Draft(r.Context(), userID)
	if err != nil {
		h.log.Error("get draft failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load draft"})
		return
	}

	writeJSON(w, http.StatusOK, models.JournalRequest{Text: text})
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.journal.SaveDraft(r.Context(), userID, req.Text); err != nil {
		h.log.Error("save draft failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save draft"})
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.journal.ClearDraft(r.Context(), userID); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to clear draft"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tags previews the tags an entry would get without saving it.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	var req models.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, models.JournalTagsResponse{Tags: Tag(req.Text)})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
