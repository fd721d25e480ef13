package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShiftStart and ShiftEnd are stored as HH:MM:SS strings.
type WorkingSlot struct {
	ID         uuid.UUID `json:"id"`
	ShiftID    uuid.UUID `json:"shiftId"`
	DayID      uuid.UUID `json:"dayId"`
	ShiftStart string    `json:"shiftStart"`
	ShiftEnd   string    `json:"shiftEnd"`
	Capacity   int32     `json:"capacity"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}
