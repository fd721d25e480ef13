package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/export"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/schedule"
)

// GetStaffSchedules lists assignments. The listing narrows by workingDate, by
// from/to range or by staffId; without parameters it covers the current week.
func (h *Handler) GetStaffSchedules(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		schedules []*domain.StaffSchedule
		err       error
	)

	switch {
	case query.Get("staffId") != "":
		staffID, parseErr := uuid.Parse(query.Get("staffId"))
		if parseErr != nil {
			h.errorResponse(w, r, "invalid staff id")
			return
		}
		schedules, err = h.repository.GetStaffSchedulesByStaff(staffID)
	case query.Get("workingDate") != "":
		date, parseErr := time.Parse("2006-01-02", query.Get("workingDate"))
		if parseErr != nil {
			h.errorResponse(w, r, "workingDate must use the YYYY-MM-DD format")
			return
		}
		schedules, err = h.repository.GetStaffSchedulesByDate(date)
	case query.Get("from") != "" || query.Get("to") != "":
		from, parseErr := time.Parse("2006-01-02", query.Get("from"))
		if parseErr != nil {
			h.errorResponse(w, r, "from must use the YYYY-MM-DD format")
			return
		}
		to, parseErr := time.Parse("2006-01-02", query.Get("to"))
		if parseErr != nil {
			h.errorResponse(w, r, "to must use the YYYY-MM-DD format")
			return
		}
		schedules, err = h.repository.GetStaffSchedulesInRange(from, to)
	default:
		now := h.now()
		schedules, err = h.repository.GetStaffSchedulesInRange(schedule.StartOfWeek(now), schedule.EndOfWeek(now))
	}

	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched staff schedules", schedules, len(schedules))
}

// ExportWeekSchedules streams the week containing date (default: now) as an
// xlsx workbook.
func (h *Handler) ExportWeekSchedules(w http.ResponseWriter, r *http.Request) {
	anchor := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.errorResponse(w, r, "date must use the YYYY-MM-DD format")
			return
		}
		anchor = parsed
	}

	weekStart := schedule.StartOfWeek(anchor)
	schedules, err := h.repository.GetStaffSchedulesInRange(weekStart, schedule.EndOfWeek(anchor))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	workbook, err := export.WeekScheduleWorkbook(weekStart, schedules)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("week-schedule-%s.xlsx", weekStart.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

// GetStaffScheduleCalendarFeed serves one staff member's assignments as an
// iCalendar feed.
func (h *Handler) GetStaffScheduleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(r.URL.Query().Get("staffId"))
	if err != nil {
		h.errorResponse(w, r, "invalid staff id")
		return
	}

	staff, err := h.repository.GetStaffByID(staffID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	schedules, err := h.repository.GetStaffSchedulesByStaff(staffID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cal, err := export.StaffCalendar(staff, schedules)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		h.logInternalServerError(r, err)
	}
}
