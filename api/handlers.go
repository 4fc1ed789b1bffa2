/*
handlers.go - HTTP API handlers for the income engine

PURPOSE:
  Exposes the household profile and the income summary via REST.
  Handlers parse HTTP, delegate to the store and the engine, and
  serialize responses. The engine itself stays a pure library.

ENDPOINTS:
  Persons and streams:
    GET    /api/persons                          List person IDs
    GET    /api/persons/{id}/streams             List a person's streams
    POST   /api/persons/{id}/streams             Create/replace a stream
    DELETE /api/persons/{id}/streams/{streamID}  Delete a stream
    PUT    /api/persons/{id}/benefits            Replace benefit rates

  Summary:
    GET    /api/summary?as_of=YYYY-MM-DD         Compute totals

  Profile documents:
    GET    /api/profile                          Export the profile JSON
    PUT    /api/profile                          Import a profile JSON

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Person or stream not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/horizonplan/income-engine/engine"
	"github.com/horizonplan/income-engine/profile"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  engine.ProfileStore
	Engine *engine.Engine
	Log    zerolog.Logger
}

// NewHandler creates a handler over the given store. A nil payroll
// calendar is fine: anchored salary streams fall back to the
// days-elapsed estimate.
func NewHandler(store engine.ProfileStore, payroll engine.PayrollCalendar, log zerolog.Logger) *Handler {
	return &Handler{
		Store:  store,
		Engine: engine.NewEngine(payroll),
		Log:    log,
	}
}

// =============================================================================
// PERSON AND STREAM HANDLERS
// =============================================================================

// ListPersons returns every known person ID.
func (h *Handler) ListPersons(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Store.ListPersons(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list persons", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	h.writeJSON(w, http.StatusOK, ids)
}

// ListStreams returns a person's income streams.
func (h *Handler) ListStreams(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	streams, err := h.Store.ListStreams(r.Context(), personID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list streams", err)
		return
	}
	if streams == nil {
		streams = []engine.IncomeStream{}
	}
	h.writeJSON(w, http.StatusOK, streams)
}

// SaveStream creates or replaces a stream for a person.
func (h *Handler) SaveStream(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")

	var req CreateStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	s := req.Stream
	if !engine.KnownStreamType(s.Type) {
		h.writeError(w, http.StatusBadRequest, "Unknown stream type", nil)
		return
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	if err := h.Store.SaveStream(r.Context(), personID, s); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save stream", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

// DeleteStream removes one stream.
func (h *Handler) DeleteStream(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	streamID := chi.URLParam(r, "streamID")

	err := h.Store.DeleteStream(r.Context(), personID, streamID)
	switch {
	case errors.Is(err, engine.ErrStreamNotFound):
		h.writeError(w, http.StatusNotFound, "Stream not found", err)
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, "Failed to delete stream", err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// SaveBenefitRates replaces a person's government benefit schedule.
func (h *Handler) SaveBenefitRates(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")

	var req BenefitRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Store.SaveBenefitRates(r.Context(), personID, req.Rates); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to save benefit rates", err)
		return
	}
	h.writeJSON(w, http.StatusOK, req.Rates)
}

// =============================================================================
// SUMMARY HANDLER
// =============================================================================

// GetSummary loads the profile and runs one computation pass. The
// reference date is taken from ?as_of, or snapshotted as today.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var asOf engine.Date
	if q := r.URL.Query().Get("as_of"); q != "" {
		d, err := engine.ParseDate(q)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
			return
		}
		asOf = d
	}

	persons, err := h.Store.LoadProfile(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	summary := h.Engine.Compute(engine.ComputeInput{AsOf: asOf, Persons: persons})
	h.writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// =============================================================================
// PROFILE DOCUMENT HANDLERS
// =============================================================================

// ExportProfile renders the stored profile as a JSON document.
func (h *Handler) ExportProfile(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Store.LoadProfile(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	payload, err := profile.Encode(engine.Date{}, persons)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to encode profile", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// ImportProfile replaces stored streams and rates from a JSON document.
func (h *Handler) ImportProfile(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Failed to read body", err)
		return
	}
	in, err := profile.Parse(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid profile document", err)
		return
	}

	for _, p := range in.Persons {
		for _, s := range p.Streams {
			if err := h.Store.SaveStream(r.Context(), p.ID, s); err != nil {
				h.writeError(w, http.StatusInternalServerError, "Failed to save stream", err)
				return
			}
		}
		if err := h.Store.SaveBenefitRates(r.Context(), p.ID, p.Benefits); err != nil {
			h.writeError(w, http.StatusInternalServerError, "Failed to save benefit rates", err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string, err error) {
	dto := ErrorDTO{Error: msg}
	if err != nil {
		dto.Details = err.Error()
		h.Log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	h.writeJSON(w, status, dto)
}
