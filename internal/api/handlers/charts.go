package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/services"
)

var validate = validator.New()

// ChartHandler exposes the birth-chart calculation endpoint.
type ChartHandler struct {
	Resolver *services.LocationResolver
	Engine   *services.ChartEngine
}

// Compute runs the full calculation pipeline for one request. Domain
// failures (bad birth data, unresolvable location, ephemeris errors) are
// reported inside the result body with success=false; HTTP error codes
// are reserved for malformed requests.
func (h *ChartHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ChartRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := services.ComputeBirthChart(r.Context(), services.ChartRequest{
		Name:     req.Name,
		Year:     req.Year,
		Month:    req.Month,
		Day:      req.Day,
		Hour:     req.Hour,
		Minute:   req.Minute,
		District: req.District,
		State:    req.State,
		Country:  req.Country,
	}, h.Resolver, h.Engine)

	writeJSON(w, r, http.StatusOK, dto.ChartResponse{
		Success:     result.Success,
		Positions:   result.Positions,
		Location:    result.Location,
		Coordinates: result.Coordinates,
		Error:       result.Error,
	})
}
