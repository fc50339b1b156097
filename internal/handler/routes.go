package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires the public and token-protected routes. auth guards everything
// except registration and login.
func Router(h *Handler, auth mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(auth)
	authRouter.HandleFunc("/analyze", h.Analyze).Methods(http.MethodPost)
	authRouter.HandleFunc("/analyze/batch", h.AnalyzeBatch).Methods(http.MethodPost)
	authRouter.HandleFunc("/analyses/{id}", h.GetAnalysis).Methods(http.MethodGet)
	authRouter.HandleFunc("/analyses/{id}/xml", h.GetAnalysisXML).Methods(http.MethodGet)
	authRouter.HandleFunc("/portfolio", h.Portfolio).Methods(http.MethodGet)
	return r
}
