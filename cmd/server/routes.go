package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/jvdt-hub/backend/internal/assessments"
	"github.com/jvdt-hub/backend/internal/auth"
	"github.com/jvdt-hub/backend/internal/journal"
	"github.com/jvdt-hub/backend/internal/logging"
	"github.com/jvdt-hub/backend/internal/middleware"
)

type routes struct {
	tokens      middleware.TokenParser
	auth        *auth.Handler
	assessments *assessments.Handler
	journal     *journal.Handler
	metrics     http.Handler
}

func newRouter(d routes, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logging.New("http")))

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(d.tokens))
	public.HandleFunc("/auth/register", d.auth.Register).Methods("POST")
	public.HandleFunc("/auth/login", d.auth.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(d.tokens))
	protected.HandleFunc("/auth/me", d.auth.GetCurrentUser).Methods("GET")

	d.assessments.RegisterRoutes(public, protected)
	d.journal.RegisterRoutes(protected)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	if d.metrics != nil {
		r.Handle("/metrics", d.metrics).Methods("GET")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
