package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func onholdRegister() *domain.WorkingSlotRegister {
	return &domain.WorkingSlotRegister{
		ID:            uuid.New(),
		StaffID:       uuid.New(),
		WorkingDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		WorkingSlotID: uuid.New(),
		RegisterDate:  time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC),
		Status:        domain.RegisterStatusOnhold,
	}
}

func TestRegistrationWorkflow_Approve(t *testing.T) {
	register := onholdRegister()
	store := newFakeRegistrationStore(register)
	w := NewRegistrationWorkflow(store, NewZoneAssigner(&fakeAssignmentStore{}))

	got, err := w.Approve(register.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.RegisterStatusApproved, got.Status)
	assert.Nil(t, got.ZoneID, "approval alone must not assign a zone")
}

func TestRegistrationWorkflow_Approve_notOnhold(t *testing.T) {
	tests := []struct {
		name   string
		status domain.RegisterStatus
	}{
		{name: "already approved", status: domain.RegisterStatusApproved},
		{name: "already rejected", status: domain.RegisterStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			register := onholdRegister()
			register.Status = tt.status
			store := newFakeRegistrationStore(register)
			w := NewRegistrationWorkflow(store, NewZoneAssigner(&fakeAssignmentStore{}))

			_, err := w.Approve(register.ID)

			assert.ErrorIs(t, err, ErrRegisterNotOnhold)
			assert.Zero(t, store.approveCalls)
		})
	}
}

func TestRegistrationWorkflow_Reject(t *testing.T) {
	register := onholdRegister()
	store := newFakeRegistrationStore(register)
	w := NewRegistrationWorkflow(store, NewZoneAssigner(&fakeAssignmentStore{}))

	got, err := w.Reject(register.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.RegisterStatusRejected, got.Status)
	assert.Nil(t, got.ZoneID)
}

func TestRegistrationWorkflow_AssignZone_requiresZone(t *testing.T) {
	register := onholdRegister()
	store := newFakeRegistrationStore(register)
	w := NewRegistrationWorkflow(store, NewZoneAssigner(&fakeAssignmentStore{}))

	_, _, err := w.AssignZone(register.ID, uuid.Nil)

	assert.ErrorIs(t, err, ErrZoneRequired)
	assert.Zero(t, store.approveCalls, "nothing may be mutated without a zone")
}

func TestRegistrationWorkflow_AssignZone_fromOnhold(t *testing.T) {
	register := onholdRegister()
	store := newFakeRegistrationStore(register)
	assignments := &fakeAssignmentStore{registers: store}
	w := NewRegistrationWorkflow(store, NewZoneAssigner(assignments))
	zoneID := uuid.New()

	got, schedule, err := w.AssignZone(register.ID, zoneID)

	require.NoError(t, err)
	assert.Equal(t, domain.RegisterStatusApproved, got.Status)
	require.NotNil(t, got.ZoneID)
	assert.Equal(t, zoneID, *got.ZoneID)

	require.Len(t, assignments.schedules, 1)
	created := assignments.schedules[0]
	assert.Equal(t, register.StaffID, created.StaffID)
	assert.Equal(t, register.WorkingDate, created.WorkingDate)
	assert.Equal(t, register.WorkingSlotID, created.WorkingSlotID)
	assert.Equal(t, zoneID, created.ZoneID)
	assert.Equal(t, created.ID, schedule.ID)
}

func TestRegistrationWorkflow_AssignZone_secondStepFailureIsResumable(t *testing.T) {
	register := onholdRegister()
	store := newFakeRegistrationStore(register)
	assignments := &fakeAssignmentStore{registers: store, createErr: errors.New("backend unavailable")}
	w := NewRegistrationWorkflow(store, NewZoneAssigner(assignments))
	zoneID := uuid.New()

	_, _, err := w.AssignZone(register.ID, zoneID)
	require.Error(t, err)

	// only the approval committed: no zone and no schedule row
	intermediate, getErr := store.GetWorkingSlotRegisterByID(register.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.RegisterStatusApproved, intermediate.Status)
	assert.Nil(t, intermediate.ZoneID)
	assert.Empty(t, assignments.schedules)
	assert.Equal(t, 1, store.approveCalls)

	// re-invoking resumes in zone-only mode without re-approving
	assignments.createErr = nil
	got, schedule, err := w.AssignZone(register.ID, zoneID)

	require.NoError(t, err)
	assert.Equal(t, 1, store.approveCalls, "resume must not attempt a second approval")
	assert.Equal(t, domain.RegisterStatusApproved, got.Status)
	require.NotNil(t, got.ZoneID)
	assert.Equal(t, zoneID, *got.ZoneID)
	require.NotNil(t, schedule)
	assert.Len(t, assignments.schedules, 1, "retry must not create a second assignment")
}

func TestRegistrationWorkflow_AssignZone_retryAfterRecordingFailure(t *testing.T) {
	// approved but unzoned, as a failed assignment attempt leaves it
	register := onholdRegister()
	register.Status = domain.RegisterStatusApproved
	store := newFakeRegistrationStore(register)
	assignments := &fakeAssignmentStore{registers: store, createErr: errors.New("backend unavailable")}
	w := NewRegistrationWorkflow(store, NewZoneAssigner(assignments))
	zoneID := uuid.New()

	_, _, err := w.AssignZone(register.ID, zoneID)
	require.Error(t, err)
	assert.Empty(t, assignments.schedules, "a failed attempt must leave no schedule row behind")

	assignments.createErr = nil
	got, schedule, err := w.AssignZone(register.ID, zoneID)

	require.NoError(t, err)
	require.NotNil(t, got.ZoneID)
	assert.Equal(t, zoneID, *got.ZoneID)
	require.NotNil(t, schedule)
	assert.Len(t, assignments.schedules, 1, "retry must not duplicate the assignment")
	assert.Zero(t, store.approveCalls)
}

func TestRegistrationWorkflow_AssignZone_registrationChangedUnderneath(t *testing.T) {
	register := onholdRegister()
	register.Status = domain.RegisterStatusApproved
	store := newFakeRegistrationStore(register)

	// another decision lands between the read and the assignment transaction:
	// the transaction sees the registration already zoned
	raced := *register
	otherZone := uuid.New()
	raced.ZoneID = &otherZone
	assignments := &fakeAssignmentStore{registers: newFakeRegistrationStore(&raced)}

	w := NewRegistrationWorkflow(store, NewZoneAssigner(assignments))

	_, _, err := w.AssignZone(register.ID, uuid.New())

	assert.ErrorIs(t, err, ErrRegisterNotAssignable)
	assert.Empty(t, assignments.schedules)
}

func TestRegistrationWorkflow_AssignZone_terminalStates(t *testing.T) {
	zoneID := uuid.New()

	rejected := onholdRegister()
	rejected.Status = domain.RegisterStatusRejected

	zoned := onholdRegister()
	zoned.Status = domain.RegisterStatusApproved
	zoned.ZoneID = &zoneID

	for _, register := range []*domain.WorkingSlotRegister{rejected, zoned} {
		store := newFakeRegistrationStore(register)
		w := NewRegistrationWorkflow(store, NewZoneAssigner(&fakeAssignmentStore{}))

		_, _, err := w.AssignZone(register.ID, uuid.New())

		assert.ErrorIs(t, err, ErrRegisterNotAssignable)
	}
}
