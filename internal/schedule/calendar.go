package schedule

import (
	"time"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

const monthGridSize = 42 // 6 rows of 7 columns

// StartOfWeek returns the Monday of the ISO week containing t, at midnight in
// t's location.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, 1-weekday)
}

// EndOfWeek returns the Sunday of the ISO week containing t, at midnight.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// SameDay compares calendar year, month and day only.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateMatches is the date-equality predicate used wherever dated entities are
// bucketed onto calendar cells: the ISO string is parsed leniently and only
// its calendar date is compared, so embedded time-of-day and offset artifacts
// never influence the match. Malformed strings simply do not match.
func DateMatches(value string, date time.Time) bool {
	parsed, ok := parseISODate(value)
	if !ok {
		return false
	}
	return SameDay(parsed, date)
}

func parseISODate(value string) (time.Time, bool) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildWeekGrid returns the 7 dates from Monday through Sunday of the week
// containing current.
func BuildWeekGrid(current time.Time) []time.Time {
	start := StartOfWeek(current)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// BuildMonthGrid returns exactly 42 dates: leading days from the previous
// month so the 1st lands in its Monday-start column, the whole current month,
// and trailing days from the next month up to 6 full rows.
func BuildMonthGrid(current time.Time) []time.Time {
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
	start := StartOfWeek(first)
	dates := make([]time.Time, monthGridSize)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// InWeek reports whether date falls inside the Monday-to-Sunday week
// containing now, both boundaries inclusive.
func InWeek(date time.Time, now time.Time) bool {
	start := StartOfWeek(now)
	end := start.AddDate(0, 0, 7)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, start.Location())
	return !day.Before(start) && day.Before(end)
}

// PartitionByWeek splits registrations into those dated in now's week and all
// the others, preserving input order.
func PartitionByWeek(registers []*domain.WorkingSlotRegister, now time.Time) (currentWeek, otherWeeks []*domain.WorkingSlotRegister) {
	currentWeek = make([]*domain.WorkingSlotRegister, 0, len(registers))
	otherWeeks = make([]*domain.WorkingSlotRegister, 0, len(registers))
	for _, register := range registers {
		if InWeek(register.WorkingDate, now) {
			currentWeek = append(currentWeek, register)
		} else {
			otherWeeks = append(otherWeeks, register)
		}
	}
	return currentWeek, otherWeeks
}

// Cell is one calendar cell with every entity bucketed onto its date. Swap
// requests land on a cell when either of their endpoints matches it.
type Cell struct {
	Date         time.Time                        `json:"date"`
	InMonth      bool                             `json:"inMonth"`
	Schedules    []*domain.StaffSchedule          `json:"schedules"`
	Registers    []*domain.WorkingSlotRegister    `json:"registers"`
	SwapRequests []*domain.SwapWorkingSlotRequest `json:"swapRequests"`
}

// BuildCells buckets schedules, registrations and swap requests onto the given
// grid dates. Cells outside month are marked non-interactive via InMonth.
func BuildCells(dates []time.Time, month time.Month, schedules []*domain.StaffSchedule, registers []*domain.WorkingSlotRegister, swaps []*domain.SwapWorkingSlotRequest) []Cell {
	cells := make([]Cell, len(dates))
	for i, date := range dates {
		cell := Cell{
			Date:         date,
			InMonth:      date.Month() == month,
			Schedules:    make([]*domain.StaffSchedule, 0),
			Registers:    make([]*domain.WorkingSlotRegister, 0),
			SwapRequests: make([]*domain.SwapWorkingSlotRequest, 0),
		}
		for _, schedule := range schedules {
			if SameDay(schedule.WorkingDate, date) {
				cell.Schedules = append(cell.Schedules, schedule)
			}
		}
		for _, register := range registers {
			if SameDay(register.WorkingDate, date) {
				cell.Registers = append(cell.Registers, register)
			}
		}
		for _, swap := range swaps {
			if SameDay(swap.WorkingDateFrom, date) || SameDay(swap.WorkingDateTo, date) {
				cell.SwapRequests = append(cell.SwapRequests, swap)
			}
		}
		cells[i] = cell
	}
	return cells
}
