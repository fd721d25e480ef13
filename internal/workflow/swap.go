package workflow

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

type SwapStore interface {
	GetSwapRequestByID(id uuid.UUID) (*domain.SwapWorkingSlotRequest, error)
	ApproveSwapRequest(id uuid.UUID) error
	RejectSwapRequest(id uuid.UUID) error
}

// SwapWorkflow decides mutual shift-exchange requests. Approval exchanges both
// staff members' assignments atomically in the store; there is no partial
// swap state to recover from.
type SwapWorkflow struct {
	store SwapStore
}

func NewSwapWorkflow(store SwapStore) *SwapWorkflow {
	return &SwapWorkflow{store: store}
}

func (w *SwapWorkflow) Approve(id uuid.UUID) (*domain.SwapWorkingSlotRequest, error) {
	swap, err := w.store.GetSwapRequestByID(id)
	if err != nil {
		return nil, err
	}
	if swap.Status.Terminal() {
		return nil, ErrSwapAlreadyDecided
	}

	if err := w.store.ApproveSwapRequest(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapAlreadyDecided
		}
		return nil, err
	}

	return w.store.GetSwapRequestByID(id)
}

func (w *SwapWorkflow) Reject(id uuid.UUID) (*domain.SwapWorkingSlotRequest, error) {
	swap, err := w.store.GetSwapRequestByID(id)
	if err != nil {
		return nil, err
	}
	if swap.Status.Terminal() {
		return nil, ErrSwapAlreadyDecided
	}

	if err := w.store.RejectSwapRequest(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapAlreadyDecided
		}
		return nil, err
	}

	return w.store.GetSwapRequestByID(id)
}
