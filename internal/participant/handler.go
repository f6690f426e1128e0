package participant

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for participant operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new participant handler with service dependency injected
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for participant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /trips/{code}/participants
// @Summary      Add a participant
// @Description  Add a participant to the trip, optionally with the number of days they attend
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        request body CreateParticipantRequest true "Participant creation request"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/participants [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	var req CreateParticipantRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		h.logger.Error("failed to create participant", zap.Error(err))
		response.InternalError(w, "Failed to create participant")
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// List handles GET /trips/{code}/participants
// @Summary      List participants
// @Description  Get the trip's participants in the order they joined
// @Tags         participants
// @Produce      json
// @Param        code path string true "Trip code"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/participants [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	participants, err := h.service.List(r.Context(), tripID)
	if err != nil {
		h.logger.Error("failed to list participants", zap.Error(err))
		response.InternalError(w, "Failed to list participants")
		return
	}

	participantResponses := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		participantResponses[i] = p.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, participantResponses, &response.Meta{Total: len(participants)})
}

// Update handles PUT /trips/{code}/participants/{id}
// @Summary      Update a participant
// @Description  Change a participant's nickname or days in trip; an empty nickname clears it and days below 1 reset to the trip duration
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        id path string true "Participant ID"
// @Param        request body UpdateParticipantRequest true "Participant update request"
// @Success      200 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/participants/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	var req UpdateParticipantRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), tripID, id, &req)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		h.logger.Error("failed to update participant", zap.Error(err))
		response.InternalError(w, "Failed to update participant")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Delete handles DELETE /trips/{code}/participants/{id}
// @Summary      Remove a participant
// @Description  Remove a participant who has no payments
// @Tags         participants
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        id path string true "Participant ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/participants/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid participant ID")
		return
	}

	if err := h.service.Delete(r.Context(), tripID, id); err != nil {
		switch {
		case errors.Is(err, ErrParticipantNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrParticipantHasPayments):
			response.BadRequest(w, err.Error())
		default:
			h.logger.Error("failed to delete participant", zap.Error(err))
			response.InternalError(w, "Failed to delete participant")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Participant removed successfully"})
}
