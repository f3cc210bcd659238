package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

// User-facing messages stay in the product locale; upstream detail is only
// logged, never surfaced.
const (
	msgMoodRequired  = "Texto do mood é obrigatório."
	msgMusicFailure  = "Erro interno do servidor ao buscar músicas."
	msgStreamFailure = "Erro interno do servidor ao buscar lives."
)

// moodRequest defines what the client sends us
type moodRequest struct {
	MoodText string `json:"moodText"`
}

type musicResponse struct {
	Videos []domain.Video `json:"videos"`
}

// MusicByMood handles POST /api/get-music-by-mood
func (h *Handler) MusicByMood(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	videos, err := h.svc.MusicForMood(r.Context(), req.MoodText)
	if err != nil {
		if errors.Is(err, domain.ErrMoodRequired) {
			writeError(w, http.StatusBadRequest, msgMoodRequired)
			return
		}
		log.Printf("ERROR rest: mood search failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgMusicFailure)
		return
	}

	writeJSON(w, http.StatusOK, musicResponse{Videos: videos})
}

// SurpriseMe handles GET /api/surprise-me
func (h *Handler) SurpriseMe(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.SurpriseMe(r.Context())
	if err != nil {
		log.Printf("ERROR rest: surprise search failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgMusicFailure)
		return
	}

	writeJSON(w, http.StatusOK, musicResponse{Videos: videos})
}
