package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

type AssignmentStore interface {
	CreateStaffScheduleForRegister(schedule *domain.StaffSchedule, registerID uuid.UUID) error
}

type ZoneAssignmentParams struct {
	RegisterID    uuid.UUID
	WorkingDate   time.Time
	StaffID       uuid.UUID
	ZoneID        uuid.UUID
	WorkingSlotID uuid.UUID
}

// ZoneAssigner creates the authoritative staff-works-zone record. The store
// commits the schedule row and the registration's zone together; the assigner
// performs no duplicate or capacity checks of its own, the store is the sole
// arbiter of placement validity and its errors are surfaced verbatim.
type ZoneAssigner struct {
	store AssignmentStore
}

func NewZoneAssigner(store AssignmentStore) *ZoneAssigner {
	return &ZoneAssigner{store: store}
}

func (a *ZoneAssigner) CreateAssignment(params ZoneAssignmentParams) (*domain.StaffSchedule, error) {
	schedule := &domain.StaffSchedule{
		StaffID:       params.StaffID,
		WorkingDate:   params.WorkingDate,
		WorkingSlotID: params.WorkingSlotID,
		ZoneID:        params.ZoneID,
	}

	if err := a.store.CreateStaffScheduleForRegister(schedule, params.RegisterID); err != nil {
		return nil, err
	}

	return schedule, nil
}
