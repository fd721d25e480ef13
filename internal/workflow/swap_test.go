package workflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func pendingSwapFixture() (*domain.SwapWorkingSlotRequest, *fakeSwapStore) {
	staffA := uuid.New()
	staffB := uuid.New()
	slot1 := uuid.New()
	slot2 := uuid.New()
	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	swap := &domain.SwapWorkingSlotRequest{
		ID:                uuid.New(),
		EmployeeFromID:    staffA,
		WorkingSlotFromID: slot1,
		WorkingDateFrom:   day1,
		EmployeeToID:      staffB,
		WorkingSlotToID:   slot2,
		WorkingDateTo:     day2,
		RequestDate:       time.Date(2024, 4, 28, 8, 0, 0, 0, time.UTC),
		Status:            domain.SwapStatusPendingManagerApprove,
	}

	store := newFakeSwapStore(swap)
	store.schedules = []*domain.StaffSchedule{
		{ID: uuid.New(), StaffID: staffA, WorkingDate: day1, WorkingSlotID: slot1},
		{ID: uuid.New(), StaffID: staffB, WorkingDate: day2, WorkingSlotID: slot2},
	}

	return swap, store
}

func TestSwapWorkflow_Approve(t *testing.T) {
	swap, store := pendingSwapFixture()
	w := NewSwapWorkflow(store)

	got, err := w.Approve(swap.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.SwapStatusApproved, got.Status)

	// exact exchange: A now holds B's assignment and vice versa, no extra rows
	require.Len(t, store.schedules, 2)
	first, second := store.schedules[0], store.schedules[1]
	assert.Equal(t, swap.EmployeeToID, first.StaffID)
	assert.Equal(t, swap.WorkingDateFrom, first.WorkingDate)
	assert.Equal(t, swap.WorkingSlotFromID, first.WorkingSlotID)
	assert.Equal(t, swap.EmployeeFromID, second.StaffID)
	assert.Equal(t, swap.WorkingDateTo, second.WorkingDate)
	assert.Equal(t, swap.WorkingSlotToID, second.WorkingSlotID)
}

func TestSwapWorkflow_Approve_sameDateAndSlot(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	slot := uuid.New()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	swap := &domain.SwapWorkingSlotRequest{
		ID:                uuid.New(),
		EmployeeFromID:    staffA,
		WorkingSlotFromID: slot,
		WorkingDateFrom:   day,
		EmployeeToID:      staffB,
		WorkingSlotToID:   slot,
		WorkingDateTo:     day,
		RequestDate:       time.Date(2024, 4, 28, 8, 0, 0, 0, time.UTC),
		Status:            domain.SwapStatusPendingManagerApprove,
	}

	store := newFakeSwapStore(swap)
	store.schedules = []*domain.StaffSchedule{
		{ID: uuid.New(), StaffID: staffA, WorkingDate: day, WorkingSlotID: slot},
		{ID: uuid.New(), StaffID: staffB, WorkingDate: day, WorkingSlotID: slot},
	}
	w := NewSwapWorkflow(store)

	got, err := w.Approve(swap.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.SwapStatusApproved, got.Status)

	// both rows keep their date and slot, only the staff members trade places
	require.Len(t, store.schedules, 2)
	assert.Equal(t, staffB, store.schedules[0].StaffID)
	assert.Equal(t, staffA, store.schedules[1].StaffID)
	for _, schedule := range store.schedules {
		assert.Equal(t, day, schedule.WorkingDate)
		assert.Equal(t, slot, schedule.WorkingSlotID)
	}
}

func TestSwapWorkflow_Approve_terminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.SwapStatus
	}{
		{name: "already approved", status: domain.SwapStatusApproved},
		{name: "already rejected", status: domain.SwapStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swap, store := pendingSwapFixture()
			swap.Status = tt.status
			store.swaps[swap.ID] = swap
			w := NewSwapWorkflow(store)

			_, err := w.Approve(swap.ID)

			assert.ErrorIs(t, err, ErrSwapAlreadyDecided)
		})
	}
}

func TestSwapWorkflow_Reject(t *testing.T) {
	swap, store := pendingSwapFixture()
	w := NewSwapWorkflow(store)

	got, err := w.Reject(swap.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.SwapStatusRejected, got.Status)

	// rejection never touches the schedules
	assert.Equal(t, swap.EmployeeFromID, store.schedules[0].StaffID)
	assert.Equal(t, swap.EmployeeToID, store.schedules[1].StaffID)
}
