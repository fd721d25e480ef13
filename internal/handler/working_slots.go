package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/schedule"
)

func (h *Handler) CreateWorkingSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShiftID    string `json:"shiftId" validate:"required,uuid"`
		DayID      string `json:"dayId" validate:"required,uuid"`
		ShiftStart string `json:"shiftStart" validate:"required"`
		ShiftEnd   string `json:"shiftEnd" validate:"required"`
		Capacity   int32  `json:"capacity" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	for _, value := range []string{req.ShiftStart, req.ShiftEnd} {
		if _, err := time.Parse("15:04:05", value); err != nil {
			h.errorResponse(w, r, "shift times must use the HH:MM:SS format")
			return
		}
	}

	slot := &domain.WorkingSlot{
		ShiftID:    uuid.MustParse(req.ShiftID),
		DayID:      uuid.MustParse(req.DayID),
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
		Capacity:   req.Capacity,
	}

	if err := h.repository.CreateWorkingSlot(slot); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "working_slots_shift_id_day_id_shift_start_key":
				h.badRequest(w, r, errors.New("a working slot already starts at this time on this day"))
			case pgErr.ConstraintName == "working_slots_shift_id_fkey":
				h.badRequest(w, r, errors.New("shift not found"))
			case pgErr.ConstraintName == "working_slots_day_id_fkey":
				h.badRequest(w, r, errors.New("day not found"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "working slot created", slot)
}

func (h *Handler) GetAllWorkingSlots(w http.ResponseWriter, r *http.Request) {
	var dayID *uuid.UUID
	if raw := r.URL.Query().Get("dayId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid day id")
			return
		}
		dayID = &parsed
	}

	slots, err := h.repository.GetAllWorkingSlots(dayID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched working slots", slots, len(slots))
}

func (h *Handler) GetWorkingSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid working slot id")
		return
	}

	slot, err := h.repository.GetWorkingSlotByID(slotID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "working slot not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "fetched working slot", slot)
}

// GetTimeSlots lists the 15-minute start times still bookable on a date. Past
// dates get the full catalog, same as the future; only today is filtered
// against the clock.
func (h *Handler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.errorResponse(w, r, "date query parameter is required")
		return
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.errorResponse(w, r, "date must use the YYYY-MM-DD format")
		return
	}

	slots := schedule.FilterValidSlots(schedule.GenerateAllSlots(), date, h.now())
	if len(slots) == 0 {
		h.errorResponse(w, r, "no time slots available for this date")
		return
	}

	h.listResponse(w, r, "fetched time slots", slots, len(slots))
}
