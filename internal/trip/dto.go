package trip

const dateLayout = "2006-01-02"

// CreateTripRequest represents the request to create a new trip
type CreateTripRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

// UpdateTripRequest represents the request to update a trip
type UpdateTripRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	StartDate *string `json:"start_date,omitempty"` // "" clears the date
	EndDate   *string `json:"end_date,omitempty"`   // "" clears the date
}

// TripResponse represents the response for a trip
type TripResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DurationDays int     `json:"duration_days"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	resp := &TripResponse{
		ID:           t.ID.String(),
		Code:         t.Code,
		Name:         t.Name,
		DurationDays: t.DurationDays(),
		CreatedAt:    t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if t.StartDate != nil {
		s := t.StartDate.Format(dateLayout)
		resp.StartDate = &s
	}
	if t.EndDate != nil {
		e := t.EndDate.Format(dateLayout)
		resp.EndDate = &e
	}
	return resp
}
