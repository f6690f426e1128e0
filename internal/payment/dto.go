package payment

import "github.com/fkhayef/tripsplit/internal/balance"

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PaidByID    string  `json:"paid_by_id" validate:"required,uuid"`
	Description *string `json:"description,omitempty"`
	Note        *string `json:"note,omitempty"`
	PaidAt      *string `json:"paid_at,omitempty"` // RFC 3339, defaults to now
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID          string  `json:"id"`
	PaidByID    string  `json:"paid_by_id"`
	PaidByName  string  `json:"paid_by_name,omitempty"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description,omitempty"`
	Note        *string `json:"note,omitempty"`
	PaidAt      string  `json:"paid_at"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID.String(),
		PaidByID:    p.PaidByID.String(),
		PaidByName:  p.PaidByName,
		Amount:      balance.MoneyToFloat(p.Amount),
		Description: p.Description,
		Note:        p.Note,
		PaidAt:      p.PaidAt.UTC().Format("2006-01-02T15:04:05Z"),
		CreatedAt:   p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
