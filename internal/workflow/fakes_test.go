package workflow

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

type fakeRegistrationStore struct {
	registers    map[uuid.UUID]*domain.WorkingSlotRegister
	approveErr   error
	approveCalls int
}

func newFakeRegistrationStore(registers ...*domain.WorkingSlotRegister) *fakeRegistrationStore {
	store := &fakeRegistrationStore{registers: make(map[uuid.UUID]*domain.WorkingSlotRegister)}
	for _, register := range registers {
		store.registers[register.ID] = register
	}
	return store
}

func (f *fakeRegistrationStore) GetWorkingSlotRegisterByID(id uuid.UUID) (*domain.WorkingSlotRegister, error) {
	register, ok := f.registers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *register
	return &clone, nil
}

func (f *fakeRegistrationStore) ApproveWorkingSlotRegister(id uuid.UUID) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	register, ok := f.registers[id]
	if !ok || register.Status != domain.RegisterStatusOnhold {
		return sql.ErrNoRows
	}
	register.Status = domain.RegisterStatusApproved
	f.approveCalls++
	return nil
}

func (f *fakeRegistrationStore) RejectWorkingSlotRegister(id uuid.UUID) error {
	register, ok := f.registers[id]
	if !ok || register.Status != domain.RegisterStatusOnhold {
		return sql.ErrNoRows
	}
	register.Status = domain.RegisterStatusRejected
	return nil
}

// fakeAssignmentStore mirrors the repository's single-transaction contract:
// the schedule row and the registration's zone are committed together or not
// at all.
type fakeAssignmentStore struct {
	registers *fakeRegistrationStore
	schedules []*domain.StaffSchedule
	createErr error
}

func (f *fakeAssignmentStore) CreateStaffScheduleForRegister(schedule *domain.StaffSchedule, registerID uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	register, ok := f.registers.registers[registerID]
	if !ok || register.Status != domain.RegisterStatusApproved || register.ZoneID != nil {
		return sql.ErrNoRows
	}
	schedule.ID = uuid.New()
	clone := *schedule
	f.schedules = append(f.schedules, &clone)
	zoneID := schedule.ZoneID
	register.ZoneID = &zoneID
	return nil
}

type fakeSwapStore struct {
	swaps     map[uuid.UUID]*domain.SwapWorkingSlotRequest
	schedules []*domain.StaffSchedule
}

func newFakeSwapStore(swaps ...*domain.SwapWorkingSlotRequest) *fakeSwapStore {
	store := &fakeSwapStore{swaps: make(map[uuid.UUID]*domain.SwapWorkingSlotRequest)}
	for _, swap := range swaps {
		store.swaps[swap.ID] = swap
	}
	return store
}

func (f *fakeSwapStore) GetSwapRequestByID(id uuid.UUID) (*domain.SwapWorkingSlotRequest, error) {
	swap, ok := f.swaps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *swap
	return &clone, nil
}

func (f *fakeSwapStore) findSchedule(staffID uuid.UUID, workingSlotID uuid.UUID) *domain.StaffSchedule {
	for _, schedule := range f.schedules {
		if schedule.StaffID == staffID && schedule.WorkingSlotID == workingSlotID {
			return schedule
		}
	}
	return nil
}

func (f *fakeSwapStore) ApproveSwapRequest(id uuid.UUID) error {
	swap, ok := f.swaps[id]
	if !ok || swap.Status != domain.SwapStatusPendingManagerApprove {
		return sql.ErrNoRows
	}

	from := f.findSchedule(swap.EmployeeFromID, swap.WorkingSlotFromID)
	to := f.findSchedule(swap.EmployeeToID, swap.WorkingSlotToID)
	if from == nil || to == nil {
		return sql.ErrNoRows
	}

	swap.Status = domain.SwapStatusApproved
	from.StaffID, to.StaffID = to.StaffID, from.StaffID
	return nil
}

func (f *fakeSwapStore) RejectSwapRequest(id uuid.UUID) error {
	swap, ok := f.swaps[id]
	if !ok || swap.Status != domain.SwapStatusPendingManagerApprove {
		return sql.ErrNoRows
	}
	swap.Status = domain.SwapStatusRejected
	return nil
}
