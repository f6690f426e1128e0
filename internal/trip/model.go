package trip

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Trip represents a shared trip whose participants split expenses
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"` // 4-digit code used to join and look up the trip
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// DurationDays returns the number of calendar days the trip spans, counting
// both ends. Trips with a missing or inverted date range last one day.
func (t *Trip) DurationDays() int {
	if t.StartDate == nil || t.EndDate == nil || t.EndDate.Before(*t.StartDate) {
		return 1
	}
	days := int(math.Ceil(t.EndDate.Sub(*t.StartDate).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
