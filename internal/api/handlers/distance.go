package handlers

import (
	"city-distance-service/internal/api/dto"
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/obs"
	"city-distance-service/internal/ports"
	"city-distance-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// Client-facing messages. Internal causes are only logged.
const (
	msgFieldsRequired   = "Both source and destination are required."
	msgCalculationError = "Error calculating distance"
	msgInvalidJSON      = "invalid json body"
)

// Request bodies are two short strings; anything larger is rejected as invalid.
const maxBodyBytes = 64 << 10

type DistanceHandler struct {
	Geocoder ports.Geocoder
}

// Calculate resolves source and destination and responds with the
// straight-line distance and the two-point route between them.
func (h *DistanceHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DistanceRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	query := domain.DistanceQuery{}
	if req.Source != nil {
		query.Source = *req.Source
	}
	if req.Destination != nil {
		query.Destination = *req.Destination
	}

	res, err := services.ComputeDistance(r.Context(), query, h.Geocoder)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, r, http.StatusBadRequest, msgFieldsRequired)
			return
		}

		log.Printf(
			"calculate distance failed: req_id=%s source=%q destination=%q not_found=%t err=%v",
			obs.RequestID(r.Context()), query.Source, query.Destination, errors.Is(err, domain.ErrNotFound), err,
		)
		writeError(w, r, http.StatusInternalServerError, msgCalculationError)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDistanceResponse(res))
}
