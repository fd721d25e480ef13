package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/schedule"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/workflow"
)

func (h *Handler) CreateWorkingSlotRegister(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Staff)

	var req struct {
		WorkingDate   string `json:"workingDate" validate:"required"`
		WorkingSlotID string `json:"workingSlotId" validate:"required,uuid"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	workingDate, err := time.Parse("2006-01-02", req.WorkingDate)
	if err != nil {
		h.errorResponse(w, r, "workingDate must use the YYYY-MM-DD format")
		return
	}

	if ok, err := h.underWeekLimit(myInfo.ID, workingDate); err != nil {
		h.internalServerError(w, r, err)
		return
	} else if !ok {
		h.errorResponse(w, r, "weekly registration limit reached for this week")
		return
	}

	register := &domain.WorkingSlotRegister{
		StaffID:       myInfo.ID,
		StaffName:     myInfo.FullName,
		WorkingDate:   workingDate,
		WorkingSlotID: uuid.MustParse(req.WorkingSlotID),
		RegisterDate:  h.now(),
	}

	if err := h.repository.CreateWorkingSlotRegister(register); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "working_slot_registers_staff_date_slot_key":
				h.badRequest(w, r, errors.New("you already registered for this working slot on this date"))
			case pgErr.ConstraintName == "working_slot_registers_working_slot_id_fkey":
				h.badRequest(w, r, errors.New("working slot not found"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "registration submitted", register)
}

// underWeekLimit checks the staff member's registration count against the
// weekly limit config. A missing or malformed config disables the limit.
func (h *Handler) underWeekLimit(staffID uuid.UUID, workingDate time.Time) (bool, error) {
	config, err := h.repository.GetConfigByKey(domain.ConfigKeyRegistrationWeekLimit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return true, nil
		}
		return false, err
	}

	limit, err := strconv.Atoi(config.Value)
	if err != nil || limit <= 0 {
		return true, nil
	}

	count, err := h.repository.CountStaffRegistersInRange(staffID, schedule.StartOfWeek(workingDate), schedule.EndOfWeek(workingDate))
	if err != nil {
		return false, err
	}

	return count < limit, nil
}

func (h *Handler) GetAllWorkingSlotRegisters(w http.ResponseWriter, r *http.Request) {
	registers, err := h.repository.GetAllWorkingSlotRegisters()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	switch week := r.URL.Query().Get("week"); week {
	case "":
	case "current":
		registers, _ = schedule.PartitionByWeek(registers, h.now())
	case "other":
		_, registers = schedule.PartitionByWeek(registers, h.now())
	default:
		h.errorResponse(w, r, "week must be current or other")
		return
	}

	h.listResponse(w, r, "fetched registrations", registers, len(registers))
}

func (h *Handler) GetWorkingSlotRegister(w http.ResponseWriter, r *http.Request) {
	register := r.Context().Value(RegisterCtx).(*domain.WorkingSlotRegister)
	h.successResponse(w, r, "fetched registration", register)
}

// readConfirmation enforces the explicit confirmation every decision endpoint
// requires before any state changes.
func (h *Handler) readConfirmation(w http.ResponseWriter, r *http.Request) bool {
	var req struct {
		Confirmed bool `json:"confirmed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return false
	}
	if !req.Confirmed {
		h.errorResponse(w, r, "confirmation is required for this action")
		return false
	}

	return true
}

func (h *Handler) ApproveWorkingSlotRegister(w http.ResponseWriter, r *http.Request) {
	if !h.readConfirmation(w, r) {
		return
	}

	register := r.Context().Value(RegisterCtx).(*domain.WorkingSlotRegister)

	updated, err := h.registration.Approve(register.ID)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrRegisterNotOnhold):
			h.errorResponse(w, r, "this registration has already been decided")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyRegistrationDecision(updated, "")

	h.successResponse(w, r, "registration approved", updated)
}

func (h *Handler) RejectWorkingSlotRegister(w http.ResponseWriter, r *http.Request) {
	if !h.readConfirmation(w, r) {
		return
	}

	register := r.Context().Value(RegisterCtx).(*domain.WorkingSlotRegister)

	updated, err := h.registration.Reject(register.ID)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrRegisterNotOnhold):
			h.errorResponse(w, r, "this registration has already been decided")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyRegistrationDecision(updated, "")

	h.successResponse(w, r, "registration rejected", updated)
}

func (h *Handler) AssignRegisterZone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ZoneID    string `json:"zoneId" validate:"required,uuid"`
		Confirmed bool   `json:"confirmed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !req.Confirmed {
		h.errorResponse(w, r, "confirmation is required for this action")
		return
	}

	zone, err := h.repository.GetZoneByID(uuid.MustParse(req.ZoneID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "zone not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	register := r.Context().Value(RegisterCtx).(*domain.WorkingSlotRegister)

	updated, assignment, err := h.registration.AssignZone(register.ID, zone.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, workflow.ErrZoneRequired):
			h.errorResponse(w, r, "a zone is required")
		case errors.Is(err, workflow.ErrRegisterNotOnhold), errors.Is(err, workflow.ErrRegisterNotAssignable):
			h.errorResponse(w, r, "this registration can no longer be assigned a zone")
		case errors.Is(err, repository.ErrWorkingSlotFull):
			h.errorResponse(w, r, "this working slot is already full on this date")
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_schedules_staff_date_slot_key":
			h.errorResponse(w, r, "this staff member is already scheduled for this working slot")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyRegistrationDecision(updated, zone.Name)

	h.successResponse(w, r, "zone assigned", struct {
		Register *domain.WorkingSlotRegister `json:"register"`
		Schedule *domain.StaffSchedule       `json:"schedule"`
	}{updated, assignment})
}

func (h *Handler) notifyRegistrationDecision(register *domain.WorkingSlotRegister, zoneName string) {
	staff, err := h.repository.GetStaffByID(register.StaffID)
	if err != nil {
		slog.Error("failed to load staff for notification", "staffId", register.StaffID, "error", err)
		return
	}

	h.notifyMail(domain.MailMessage{
		Type: "registration_decision",
		To:   staff.Email,
		Data: domain.RegistrationDecisionMailData{
			FullName:    staff.FullName,
			WorkingDate: register.WorkingDate.Format("2006-01-02"),
			Status:      string(register.Status),
			ZoneName:    zoneName,
		},
	})
}
