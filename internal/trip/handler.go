package trip

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for trip operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new trip handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for trip endpoints. Nested feature routers are
// mounted under /{code}, behind the middleware that resolves the trip code.
func (h *Handler) Routes(nested map[string]http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Route("/{code}", func(r chi.Router) {
		r.Use(middleware.TripContext(h.service))

		r.Get("/", h.Get)
		r.Put("/", h.Update)
		for pattern, handler := range nested {
			r.Mount(pattern, handler)
		}
	})

	return r
}

// Create handles POST /trips
// @Summary      Create a new trip
// @Description  Create a trip and allocate its 4-digit join code
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body CreateTripRequest true "Trip creation request"
// @Success      201 {object} response.APIResponse{data=TripResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /trips [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidRange) {
			response.BadRequest(w, err.Error())
			return
		}
		if errors.Is(err, ErrCodeUnavailable) {
			response.Conflict(w, err.Error())
			return
		}
		h.logger.Error("failed to create trip", zap.Error(err))
		response.InternalError(w, "Failed to create trip")
		return
	}

	response.JSON(w, http.StatusCreated, t.ToResponse())
}

// Get handles GET /trips/{code}
// @Summary      Get trip by code
// @Tags         trips
// @Produce      json
// @Param        code path string true "Trip code"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		h.logger.Error("failed to get trip", zap.Error(err))
		response.InternalError(w, "Failed to get trip")
		return
	}

	response.JSON(w, http.StatusOK, t.ToResponse())
}

// Update handles PUT /trips/{code}
// @Summary      Update a trip
// @Description  Rename a trip or change its dates
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        request body UpdateTripRequest true "Trip update request"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateTripRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "code"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidRange):
			response.BadRequest(w, err.Error())
		default:
			h.logger.Error("failed to update trip", zap.Error(err))
			response.InternalError(w, "Failed to update trip")
		}
		return
	}

	response.JSON(w, http.StatusOK, t.ToResponse())
}
