package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

const scheduleSheetName = "Week Schedule"

// WeekScheduleWorkbook renders the assignments of one Monday-to-Sunday week as
// a spreadsheet, one row per assignment, ordered as given.
func WeekScheduleWorkbook(weekStart time.Time, schedules []*domain.StaffSchedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", scheduleSheetName); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Week of %s", weekStart.Format("2006-01-02"))
	if err := f.SetCellValue(scheduleSheetName, "A1", title); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Day", "Shift Start", "Shift End", "Staff", "Zone"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(scheduleSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, schedule := range schedules {
		row := i + 3
		values := []any{
			schedule.WorkingDate.Format("2006-01-02"),
			schedule.WorkingDate.Weekday().String(),
			schedule.WorkingSlot.ShiftStart,
			schedule.WorkingSlot.ShiftEnd,
			schedule.StaffName,
			schedule.Zone.Name,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(scheduleSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(scheduleSheetName, "A", "F", 16); err != nil {
		return nil, err
	}

	return f, nil
}
