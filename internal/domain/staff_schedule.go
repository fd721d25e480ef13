package domain

import (
	"time"

	"github.com/google/uuid"
)

// StaffSchedule is the authoritative record that a staff member works a zone
// during a working slot on a date. It is only ever created through zone
// assignment, never edited in place.
type StaffSchedule struct {
	ID            uuid.UUID    `json:"id"`
	StaffID       uuid.UUID    `json:"staffId"`
	StaffName     string       `json:"staffName"`
	Staff         *Staff       `json:"staff,omitempty"`
	WorkingDate   time.Time    `json:"workingDate"`
	WorkingSlotID uuid.UUID    `json:"workingSlotId"`
	WorkingSlot   *WorkingSlot `json:"workingSlot,omitempty"`
	ZoneID        uuid.UUID    `json:"zoneId"`
	Zone          *Zone        `json:"zone,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
