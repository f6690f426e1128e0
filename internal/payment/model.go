package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents money one participant spent on behalf of the trip
type Payment struct {
	ID          uuid.UUID       `json:"id"`
	TripID      uuid.UUID       `json:"trip_id"`
	PaidByID    uuid.UUID       `json:"paid_by_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Note        *string         `json:"note,omitempty"`
	PaidAt      time.Time       `json:"paid_at"`
	CreatedAt   time.Time       `json:"created_at"`

	// Populated via JOIN
	PaidByName string `json:"paid_by_name,omitempty"`
}
