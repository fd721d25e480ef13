package workflow

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

type RegistrationStore interface {
	GetWorkingSlotRegisterByID(id uuid.UUID) (*domain.WorkingSlotRegister, error)
	ApproveWorkingSlotRegister(id uuid.UUID) error
	RejectWorkingSlotRegister(id uuid.UUID) error
}

// RegistrationWorkflow drives a registration from Onhold to Approved to
// zoned, with Rejected terminal from Onhold.
type RegistrationWorkflow struct {
	store RegistrationStore
	zones *ZoneAssigner
}

func NewRegistrationWorkflow(store RegistrationStore, zones *ZoneAssigner) *RegistrationWorkflow {
	return &RegistrationWorkflow{
		store: store,
		zones: zones,
	}
}

// Approve moves an on-hold registration to Approved. The zone stays unset.
func (w *RegistrationWorkflow) Approve(id uuid.UUID) (*domain.WorkingSlotRegister, error) {
	register, err := w.store.GetWorkingSlotRegisterByID(id)
	if err != nil {
		return nil, err
	}
	if !register.Approvable() {
		return nil, ErrRegisterNotOnhold
	}

	if err := w.store.ApproveWorkingSlotRegister(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// lost a race against another decision
			return nil, ErrRegisterNotOnhold
		}
		return nil, err
	}

	return w.store.GetWorkingSlotRegisterByID(id)
}

// Reject moves an on-hold registration to its terminal Rejected state.
func (w *RegistrationWorkflow) Reject(id uuid.UUID) (*domain.WorkingSlotRegister, error) {
	register, err := w.store.GetWorkingSlotRegisterByID(id)
	if err != nil {
		return nil, err
	}
	if !register.Approvable() {
		return nil, ErrRegisterNotOnhold
	}

	if err := w.store.RejectWorkingSlotRegister(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegisterNotOnhold
		}
		return nil, err
	}

	return w.store.GetWorkingSlotRegisterByID(id)
}

// AssignZone assigns a zone to a registration. From Onhold it first approves,
// then creates the schedule record and stamps the zone on the registration in
// a single transaction. When that second step fails the registration is left
// Approved with no zone and no schedule row, and calling AssignZone again
// resumes from exactly that state without re-approving or duplicating the
// assignment.
func (w *RegistrationWorkflow) AssignZone(id uuid.UUID, zoneID uuid.UUID) (*domain.WorkingSlotRegister, *domain.StaffSchedule, error) {
	if zoneID == uuid.Nil {
		return nil, nil, ErrZoneRequired
	}

	register, err := w.store.GetWorkingSlotRegisterByID(id)
	if err != nil {
		return nil, nil, err
	}
	if !register.ZoneAssignable() {
		return nil, nil, ErrRegisterNotAssignable
	}

	if register.Status == domain.RegisterStatusOnhold {
		if err := w.store.ApproveWorkingSlotRegister(id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil, ErrRegisterNotOnhold
			}
			return nil, nil, err
		}
	}

	schedule, err := w.zones.CreateAssignment(ZoneAssignmentParams{
		RegisterID:    id,
		WorkingDate:   register.WorkingDate,
		StaffID:       register.StaffID,
		ZoneID:        zoneID,
		WorkingSlotID: register.WorkingSlotID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the registration changed under us and everything rolled back
			return nil, nil, ErrRegisterNotAssignable
		}
		return nil, nil, err
	}

	register, err = w.store.GetWorkingSlotRegisterByID(id)
	if err != nil {
		return nil, nil, err
	}

	return register, schedule, nil
}
