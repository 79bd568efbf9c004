package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jaehwan-dev/maxdex/internal/constants"
	"github.com/jaehwan-dev/maxdex/internal/domain"
)

// songResponse decorates a song with the formatted BPM range shown to
// users ("min~max", or just "max" without a lower bound).
type songResponse struct {
	domain.Song
	BPM string `json:"bpm"`
}

// GetSong returns a single song by id.
func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	song, err := h.Search.FindByID(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if song == nil {
		h.writeError(w, http.StatusNotFound, "song not found")
		return
	}
	h.writeJSON(w, http.StatusOK, songResponse{Song: *song, BPM: song.BPMRange()})
}

// SearchByTitle returns the first song whose title contains the query.
// Literal % is stripped and spaces become wildcards, so a query of
// "rising sun" matches titles where the words appear in order.
func (h *Handler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("title")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	fragment := strings.ReplaceAll(query, "%", "")
	fragment = strings.ReplaceAll(fragment, " ", "%")

	song, err := h.Search.FindByTitle(fragment)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if song == nil {
		h.writeError(w, http.StatusNotFound, "no songs matched")
		return
	}
	h.writeJSON(w, http.StatusOK, songResponse{Song: *song, BPM: song.BPMRange()})
}

// SearchByLevel returns one page of songs charting at ?level under
// ?mode, with the matched pattern labels per song. Bad input is a 400;
// zero matches is an ordinary empty page.
func (h *Handler) SearchByLevel(w http.ResponseWriter, r *http.Request) {
	modeArg, err := strconv.Atoi(r.URL.Query().Get("mode"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "mode must be one of 4, 5, 6, 8")
		return
	}
	mode := domain.Mode(modeArg)
	if !mode.Valid() {
		h.writeError(w, http.StatusBadRequest, "mode must be one of 4, 5, 6, 8")
		return
	}

	level, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil || level < constants.MinLevel || level > constants.MaxLevel {
		h.writeError(w, http.StatusBadRequest, "level must be an integer between 1 and 15")
		return
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.Atoi(p)
		if err != nil || page < 1 {
			h.writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
	}

	result, err := h.Search.FindByLevel(mode, level, page)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// Health reports liveness plus the catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.Store.CountSongs()
	if err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"songs":  count,
	})
}
