package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/workflow"
)

func (h *Handler) CreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Staff)

	var req struct {
		WorkingSlotFromID string `json:"workingSlotFromId" validate:"required,uuid"`
		WorkingDateFrom   string `json:"workingDateFrom" validate:"required"`
		EmployeeToID      string `json:"employeeToId" validate:"required,uuid"`
		WorkingSlotToID   string `json:"workingSlotToId" validate:"required,uuid"`
		WorkingDateTo     string `json:"workingDateTo" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	workingDateFrom, err := time.Parse("2006-01-02", req.WorkingDateFrom)
	if err != nil {
		h.errorResponse(w, r, "workingDateFrom must use the YYYY-MM-DD format")
		return
	}
	workingDateTo, err := time.Parse("2006-01-02", req.WorkingDateTo)
	if err != nil {
		h.errorResponse(w, r, "workingDateTo must use the YYYY-MM-DD format")
		return
	}

	employeeToID := uuid.MustParse(req.EmployeeToID)
	if employeeToID == myInfo.ID {
		h.errorResponse(w, r, "cannot request a swap with yourself")
		return
	}

	swap := &domain.SwapWorkingSlotRequest{
		EmployeeFromID:    myInfo.ID,
		EmployeeFromName:  myInfo.FullName,
		WorkingSlotFromID: uuid.MustParse(req.WorkingSlotFromID),
		WorkingDateFrom:   workingDateFrom,
		EmployeeToID:      employeeToID,
		WorkingSlotToID:   uuid.MustParse(req.WorkingSlotToID),
		WorkingDateTo:     workingDateTo,
		RequestDate:       h.now(),
	}

	if err := h.repository.CreateSwapRequest(swap); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "swap_working_slot_requests_employee_to_id_fkey":
				h.badRequest(w, r, errors.New("swap partner not found"))
			case pgErr.ConstraintName == "swap_working_slot_requests_working_slot_from_id_fkey",
				pgErr.ConstraintName == "swap_working_slot_requests_working_slot_to_id_fkey":
				h.badRequest(w, r, errors.New("working slot not found"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "swap request submitted", swap)
}

func (h *Handler) GetAllSwapRequests(w http.ResponseWriter, r *http.Request) {
	swaps, err := h.repository.GetAllSwapRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.attachSwapSlots(swaps)

	h.listResponse(w, r, "fetched swap requests", swaps, len(swaps))
}

// attachSwapSlots loads the two working slots of each request concurrently.
// Enrichment is best effort: a failed lookup leaves the slot nil rather than
// failing the whole listing.
func (h *Handler) attachSwapSlots(swaps []*domain.SwapWorkingSlotRequest) {
	g := errgroup.Group{}
	g.SetLimit(8)

	for _, swap := range swaps {
		swap := swap
		g.Go(func() error {
			if slot, err := h.repository.GetWorkingSlotByID(swap.WorkingSlotFromID); err == nil {
				swap.WorkingSlotFrom = slot
			}
			if slot, err := h.repository.GetWorkingSlotByID(swap.WorkingSlotToID); err == nil {
				swap.WorkingSlotTo = slot
			}
			return nil
		})
	}

	_ = g.Wait()
}

func (h *Handler) GetSwapRequest(w http.ResponseWriter, r *http.Request) {
	swap := r.Context().Value(SwapRequestCtx).(*domain.SwapWorkingSlotRequest)
	h.attachSwapSlots([]*domain.SwapWorkingSlotRequest{swap})
	h.successResponse(w, r, "fetched swap request", swap)
}

func (h *Handler) ApproveSwapRequest(w http.ResponseWriter, r *http.Request) {
	if !h.readConfirmation(w, r) {
		return
	}

	swap := r.Context().Value(SwapRequestCtx).(*domain.SwapWorkingSlotRequest)

	updated, err := h.swaps.Approve(swap.ID)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrSwapAlreadyDecided):
			h.errorResponse(w, r, "this swap request has already been decided")
		case errors.Is(err, repository.ErrAssignmentMissing):
			h.errorResponse(w, r, "one of the assignments in this swap no longer exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifySwapDecision(updated)

	h.successResponse(w, r, "swap request approved", updated)
}

func (h *Handler) RejectSwapRequest(w http.ResponseWriter, r *http.Request) {
	if !h.readConfirmation(w, r) {
		return
	}

	swap := r.Context().Value(SwapRequestCtx).(*domain.SwapWorkingSlotRequest)

	updated, err := h.swaps.Reject(swap.ID)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrSwapAlreadyDecided):
			h.errorResponse(w, r, "this swap request has already been decided")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifySwapDecision(updated)

	h.successResponse(w, r, "swap request rejected", updated)
}

func (h *Handler) notifySwapDecision(swap *domain.SwapWorkingSlotRequest) {
	parties := []struct {
		staffID uuid.UUID
		partner string
	}{
		{swap.EmployeeFromID, swap.EmployeeToName},
		{swap.EmployeeToID, swap.EmployeeFromName},
	}

	for _, party := range parties {
		staff, err := h.repository.GetStaffByID(party.staffID)
		if err != nil {
			continue
		}
		h.notifyMail(domain.MailMessage{
			Type: "swap_decision",
			To:   staff.Email,
			Data: domain.SwapDecisionMailData{
				FullName:    staff.FullName,
				PartnerName: party.partner,
				Status:      string(swap.Status),
			},
		})
	}
}
