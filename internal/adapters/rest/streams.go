package rest

import (
	"log"
	"net/http"

	"github.com/MatheusHenriqueCIN/lovefi/internal/core/domain"
)

type liveStreamsResponse struct {
	StreamIDs     []string        `json:"streamIds"`
	StreamDetails []domain.Stream `json:"streamDetails"`
}

// LiveStreams handles GET /api/get-live-streams
func (h *Handler) LiveStreams(w http.ResponseWriter, r *http.Request) {
	streams, ids, err := h.svc.LiveStreams(r.Context())
	if err != nil {
		log.Printf("ERROR rest: live stream lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgStreamFailure)
		return
	}

	writeJSON(w, http.StatusOK, liveStreamsResponse{
		StreamIDs:     ids,
		StreamDetails: streams,
	})
}
