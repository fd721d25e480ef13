package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegisterStatus string

const (
	RegisterStatusOnhold   RegisterStatus = "Onhold"
	RegisterStatusApproved RegisterStatus = "Approved"
	RegisterStatusRejected RegisterStatus = "Rejected"
)

type WorkingSlotRegister struct {
	ID            uuid.UUID      `json:"id"`
	StaffID       uuid.UUID      `json:"staffId"`
	StaffName     string         `json:"staffName"`
	WorkingDate   time.Time      `json:"workingDate"`
	WorkingSlotID uuid.UUID      `json:"workingSlotId"`
	WorkingSlot   *WorkingSlot   `json:"workingSlot,omitempty"`
	RegisterDate  time.Time      `json:"registerDate"`
	Status        RegisterStatus `json:"status"`
	ZoneID        *uuid.UUID     `json:"zoneId"`
	CreatedAt     time.Time      `json:"createdAt"`
	Version       int32          `json:"-"`
}

// Approvable reports whether the registration can still move to Approved.
func (r *WorkingSlotRegister) Approvable() bool {
	return r.Status == RegisterStatusOnhold
}

// ZoneAssignable reports whether a zone assignment may proceed: either the
// registration is still on hold (combined approve + assign) or it was approved
// without a zone and the assignment is being resumed.
func (r *WorkingSlotRegister) ZoneAssignable() bool {
	switch r.Status {
	case RegisterStatusOnhold:
		return true
	case RegisterStatusApproved:
		return r.ZoneID == nil
	default:
		return false
	}
}
