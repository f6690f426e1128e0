package payment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new payment handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for payment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /trips/{code}/payments
// @Summary      Record a payment
// @Description  Record money a participant spent for the trip
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        code path string true "Trip code"
// @Param        request body CreatePaymentRequest true "Payment creation request"
// @Success      201 {object} response.APIResponse{data=PaymentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	var req CreatePaymentRequest
	if err := response.Decode(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), tripID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrInvalidPayer),
			errors.Is(err, ErrPayerNotInTrip),
			errors.Is(err, ErrInvalidPaidAt):
			response.BadRequest(w, err.Error())
		default:
			h.logger.Error("failed to create payment", zap.Error(err))
			response.InternalError(w, "Failed to create payment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// List handles GET /trips/{code}/payments
// @Summary      List payments
// @Description  Get the trip's payments, most recent first
// @Tags         payments
// @Produce      json
// @Param        code path string true "Trip code"
// @Success      200 {object} response.APIResponse{data=[]PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/payments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	payments, err := h.service.List(r.Context(), tripID)
	if err != nil {
		h.logger.Error("failed to list payments", zap.Error(err))
		response.InternalError(w, "Failed to list payments")
		return
	}

	paymentResponses := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = p.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, paymentResponses, &response.Meta{Total: len(payments)})
}

// Delete handles DELETE /trips/{code}/payments/{id}
// @Summary      Delete a payment
// @Tags         payments
// @Param        code path string true "Trip code"
// @Param        id path string true "Payment ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{code}/payments/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripID, ok := middleware.GetTripID(r.Context())
	if !ok {
		response.NotFound(w, "trip not found")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	if err := h.service.Delete(r.Context(), tripID, id); err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		h.logger.Error("failed to delete payment", zap.Error(err))
		response.InternalError(w, "Failed to delete payment")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Payment deleted successfully"})
}
