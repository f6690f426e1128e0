package participant

import (
	"time"

	"github.com/google/uuid"
)

// Participant represents a person sharing a trip's expenses
type Participant struct {
	ID         uuid.UUID `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Name       string    `json:"name"`
	Nickname   *string   `json:"nickname,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	DaysInTrip *int      `json:"days_in_trip,omitempty"` // Nil means the whole trip
	CreatedAt  time.Time `json:"created_at"`
}

// NicknameOrEmpty returns the nickname, or "" when none is set
func (p *Participant) NicknameOrEmpty() string {
	if p.Nickname == nil {
		return ""
	}
	return *p.Nickname
}
