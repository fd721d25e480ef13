package handler

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/schedule"
)

// GetScheduleCalendar assembles the week or month grid around date (default:
// today) with every schedule, registration and swap request bucketed onto its
// cell.
func (h *Handler) GetScheduleCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	anchor := h.now()
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.errorResponse(w, r, "date must use the YYYY-MM-DD format")
			return
		}
		anchor = parsed
	}

	var dates []time.Time
	view := query.Get("view")
	switch view {
	case "", "week":
		view = "week"
		dates = schedule.BuildWeekGrid(anchor)
	case "month":
		dates = schedule.BuildMonthGrid(anchor)
	default:
		h.errorResponse(w, r, "view must be week or month")
		return
	}

	from, to := dates[0], dates[len(dates)-1]

	var (
		schedules []*domain.StaffSchedule
		registers []*domain.WorkingSlotRegister
		swaps     []*domain.SwapWorkingSlotRequest
		zones     []*domain.Zone
	)

	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		schedules, err = h.repository.GetStaffSchedulesInRange(from, to)
		return err
	})
	g.Go(func() error {
		var err error
		registers, err = h.repository.GetAllWorkingSlotRegisters()
		return err
	})
	g.Go(func() error {
		var err error
		swaps, err = h.repository.GetAllSwapRequests()
		return err
	})
	g.Go(func() error {
		var err error
		zones, err = h.repository.GetAllZones()
		return err
	})
	if err := g.Wait(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.attachSwapSlots(swaps)

	cells := schedule.BuildCells(dates, anchor.Month(), schedules, registers, swaps)

	h.successResponse(w, r, "fetched schedule calendar", struct {
		View  string          `json:"view"`
		Date  string          `json:"date"`
		Cells []schedule.Cell `json:"cells"`
		Zones []*domain.Zone  `json:"zones"`
	}{
		View:  view,
		Date:  anchor.Format("2006-01-02"),
		Cells: cells,
		Zones: zones,
	})
}
