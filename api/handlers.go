/*
handlers.go - HTTP API handlers for the bonus engine

PURPOSE:
  Exposes the shift bonus engine via REST. Handles HTTP request/response,
  JSON serialization and validation, and delegates to country profiles.

ENDPOINTS:
  GET  /api/countries                      List registered country profiles
  GET  /api/countries/{code}               One profile with its rule table
  POST /api/countries/{code}/calculate     Segment a batch of shifts

REQUEST FLOW:
  1. Parse and validate the request
  2. Build customization options (factory JSON -> rule groups)
  3. Resolve the country profile
  4. Calculate and serialize the match list

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, validation failures, invalid shift bounds
  - 404: Unknown country code
  - 422: Custom rule groups that do not assemble
  - 500: Anything else

SECURITY NOTE:
  No authentication. The engine is stateless and read-only, intended to
  sit behind an internal payroll service.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/bonus-engine/countries"
	"github.com/warp/bonus-engine/engine"
	"github.com/warp/bonus-engine/factory"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a handler logging through the given logger.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// =============================================================================
// COUNTRY ENDPOINTS
// =============================================================================

// ListCountries returns the registered country profiles.
// GET /api/countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	descriptors := countries.List()
	dtos := make([]CountryDTO, 0, len(descriptors))
	for _, d := range descriptors {
		profile, err := countries.Get(d.Code)
		if err != nil {
			h.logger.Error("registered country failed to build",
				zap.String("code", d.Code), zap.Error(err))
			continue
		}
		dtos = append(dtos, toCountryDTO(profile, false))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

// GetCountry returns one country profile including its rule table.
// GET /api/countries/{code}
func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	profile, err := countries.Get(code)
	if err != nil {
		if errors.Is(err, countries.ErrUnknownCountry) {
			h.writeError(w, http.StatusNotFound, "Unknown country", err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Failed to build profile", err)
		return
	}

	h.writeJSON(w, http.StatusOK, toCountryDTO(profile, true))
}

// Calculate segments the given shifts under a country's rules.
// POST /api/countries/{code}/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	opts, err := customizationOptions(req)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, "Invalid custom rule groups", err)
		return
	}

	profile, err := countries.Get(code, opts...)
	switch {
	case errors.Is(err, countries.ErrUnknownCountry):
		h.writeError(w, http.StatusNotFound, "Unknown country", err)
		return
	case engine.IsConfigurationError(err):
		h.writeError(w, http.StatusUnprocessableEntity, "Invalid custom rule groups", err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, "Failed to build profile", err)
		return
	}

	shifts := make([]engine.Timespan, 0, len(req.Shifts))
	for _, s := range req.Shifts {
		shifts = append(shifts, engine.Timespan{Start: s.Start, End: s.End})
	}

	matches, err := profile.CalculateShifts(shifts)
	if err != nil {
		if engine.IsUsageError(err) {
			h.writeError(w, http.StatusBadRequest, "Invalid shift", err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	h.writeJSON(w, http.StatusOK, CalculateResponse{
		Country: profile.Code(),
		Matches: toMatchDTOs(matches),
	})
}

// customizationOptions turns the request's custom groups into profile
// construction options.
func customizationOptions(req CalculateRequest) ([]countries.Option, error) {
	if len(req.CustomGroups) == 0 {
		if req.ReplaceGroups {
			return nil, errors.New("replace_groups requires custom_groups")
		}
		return nil, nil
	}

	groups, err := factory.BuildGroups(req.CustomGroups)
	if err != nil {
		return nil, err
	}
	if req.ReplaceGroups {
		return []countries.Option{countries.WithReplacedGroups(groups...)}, nil
	}
	return []countries.Option{countries.WithGroups(groups...)}, nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("encoding response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	h.writeJSON(w, status, resp)
}
