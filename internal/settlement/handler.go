package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/internal/trip"
	"github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for trip summaries
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for summary endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetSummary)

	return r
}

// GetSummary handles GET /trips/{code}/summary
// @Summary      Get trip summary
// @Description  Compute every participant's balance and the transfers that settle the trip
// @Tags         summary
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        mode query string false "Weight mode" Enums(DAYS, EVEN)
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	code, ok := middleware.GetTripCode(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	summary, err := h.service.Summary(r.Context(), code, r.URL.Query().Get("mode"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownWeightMode):
			response.BadRequest(w, "mode must be DAYS or EVEN")
		case errors.Is(err, trip.ErrTripNotFound):
			response.NotFound(w, err.Error())
		default:
			h.logger.Error("failed to compute summary", zap.Error(err), zap.String("trip_code", code))
			response.InternalError(w, "Failed to compute summary")
		}
		return
	}

	response.JSON(w, http.StatusOK, summary.ToResponse())
}
