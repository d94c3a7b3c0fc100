package journal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvdt-hub/backend/internal/middleware"
	"github.com/jvdt-hub/backend/internal/models"
)

// withUser stands in for the auth middleware.
func withUser(userID int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
		})
	}
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(withUser(7))
	NewHandler(newJournal()).RegisterRoutes(protected)
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestJournalEndpoints(t *testing.T) {
	r := newRouter()

	rec := call(r, "POST", "/api/v1/journal/entries", `{"text":"The deadline moved"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var entry models.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, []string{"Orientation:T"}, entry.Tags)

	rec = call(r, "POST", "/api/v1/journal/entries", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(r, "GET", "/api/v1/journal/entries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)

	rec = call(r, "PUT", "/api/v1/journal/draft", `{"text":"unfinished"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(r, "GET", "/api/v1/journal/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"unfinished"}`, rec.Body.String())

	rec = call(r, "DELETE", "/api/v1/journal/draft", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(r, "DELETE", "/api/v1/journal/entries", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(r, "GET", "/api/v1/journal/entries", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTagsEndpoint(t *testing.T) {
	rec := call(newRouter(), "POST", "/api/v1/journal/tags", `{"text":"A shared vision"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tags":["Application:D"]}`, rec.Body.String())
}

func TestJournalRequiresUser(t *testing.T) {
	r := mux.NewRouter()
	NewHandler(newJournal()).RegisterRoutes(r)
	rec := call(r, "GET", "/journal/entries", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
