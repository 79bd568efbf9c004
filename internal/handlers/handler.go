package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jaehwan-dev/maxdex/internal/services"
	"github.com/jaehwan-dev/maxdex/internal/store"
)

type Handler struct {
	Search *services.SearchService
	Store  *store.DB
}

func NewHandler(search *services.SearchService, st *store.DB) *Handler {
	return &Handler{
		Search: search,
		Store:  st,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Route("/api/songs", func(r chi.Router) {
		r.Get("/level", h.SearchByLevel)
		r.Get("/search", h.SearchByTitle)
		r.Get("/{id}", h.GetSong)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
