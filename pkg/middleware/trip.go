package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fkhayef/tripsplit/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// TripIDKey is the context key for the resolved trip ID
	TripIDKey ContextKey = "trip_id"
	// TripCodeKey is the context key for the trip code from the URL
	TripCodeKey ContextKey = "trip_code"
)

// TripResolver looks up the trip behind a code
type TripResolver interface {
	ResolveTripID(ctx context.Context, code string) (uuid.UUID, bool, error)
}

// TripContext resolves the {code} URL parameter to a trip and stores its ID
// and code in the request context. Unknown codes get a 404.
func TripContext(resolver TripResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := strings.TrimSpace(chi.URLParam(r, "code"))
			if code == "" {
				response.BadRequest(w, "Trip code required")
				return
			}

			tripID, found, err := resolver.ResolveTripID(r.Context(), code)
			if err != nil {
				response.InternalError(w, "Failed to load trip")
				return
			}
			if !found {
				response.NotFound(w, "trip not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTripID(r.Context(), tripID, code)))
		})
	}
}

// GetTripID extracts the resolved trip ID from the request context
func GetTripID(ctx context.Context) (uuid.UUID, bool) {
	tripID, ok := ctx.Value(TripIDKey).(uuid.UUID)
	return tripID, ok
}

// GetTripCode extracts the trip code from the request context
func GetTripCode(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(TripCodeKey).(string)
	return code, ok
}

// WithTripID returns a copy of ctx carrying the given trip
func WithTripID(ctx context.Context, tripID uuid.UUID, code string) context.Context {
	ctx = context.WithValue(ctx, TripIDKey, tripID)
	return context.WithValue(ctx, TripCodeKey, code)
}
