package participant

// CreateParticipantRequest represents the request body for adding a participant
type CreateParticipantRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Nickname   *string `json:"nickname,omitempty"`
	IsAdmin    bool    `json:"is_admin"`
	DaysInTrip *int    `json:"days_in_trip,omitempty"`
}

// UpdateParticipantRequest represents the request body for updating a participant.
// An empty nickname clears it. A days_in_trip below 1 clears the value so the
// trip duration applies again.
type UpdateParticipantRequest struct {
	Nickname   *string `json:"nickname,omitempty"`
	DaysInTrip *int    `json:"days_in_trip,omitempty"`
}

// ParticipantResponse represents the response for a single participant
type ParticipantResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Nickname   *string `json:"nickname,omitempty"`
	IsAdmin    bool    `json:"is_admin"`
	DaysInTrip *int    `json:"days_in_trip,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Nickname:   p.Nickname,
		IsAdmin:    p.IsAdmin,
		DaysInTrip: p.DaysInTrip,
		CreatedAt:  p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
