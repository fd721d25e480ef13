package domain

import (
	"time"

	"github.com/google/uuid"
)

type SwapStatus string

const (
	SwapStatusPendingManagerApprove SwapStatus = "PendingManagerApprove"
	SwapStatusApproved              SwapStatus = "Approved"
	SwapStatusRejected              SwapStatus = "Rejected"
)

// Terminal reports whether the request can no longer be mutated.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusApproved || s == SwapStatusRejected
}

type SwapWorkingSlotRequest struct {
	ID                uuid.UUID    `json:"id"`
	EmployeeFromID    uuid.UUID    `json:"employeeFromId"`
	EmployeeFromName  string       `json:"employeeFromName"`
	WorkingSlotFromID uuid.UUID    `json:"workingSlotFromId"`
	WorkingDateFrom   time.Time    `json:"workingDateFrom"`
	WorkingSlotFrom   *WorkingSlot `json:"workingSlotFrom,omitempty"`
	EmployeeToID      uuid.UUID    `json:"employeeToId"`
	EmployeeToName    string       `json:"employeeToName"`
	WorkingSlotToID   uuid.UUID    `json:"workingSlotToId"`
	WorkingDateTo     time.Time    `json:"workingDateTo"`
	WorkingSlotTo     *WorkingSlot `json:"workingSlotTo,omitempty"`
	RequestDate       time.Time    `json:"requestDate"`
	Status            SwapStatus   `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	Version           int32        `json:"-"`
}
