package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func testSchedule(staffName, zoneName, date, start, end string) *domain.StaffSchedule {
	workingDate, _ := time.Parse("2006-01-02", date)
	return &domain.StaffSchedule{
		ID:          uuid.New(),
		StaffName:   staffName,
		WorkingDate: workingDate,
		WorkingSlot: &domain.WorkingSlot{ShiftStart: start, ShiftEnd: end},
		Zone:        &domain.Zone{Name: zoneName},
	}
}

func TestWeekScheduleWorkbook(t *testing.T) {
	weekStart := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
	schedules := []*domain.StaffSchedule{
		testSchedule("Nguyen An", "Kitchen", "2024-05-13", "08:00:00", "12:00:00"),
		testSchedule("Tran Mai", "Counter", "2024-05-15", "17:00:00", "22:00:00"),
	}

	f, err := WeekScheduleWorkbook(weekStart, schedules)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(scheduleSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Week of 2024-05-13", title)

	header, err := f.GetCellValue(scheduleSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	firstDate, err := f.GetCellValue(scheduleSheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-13", firstDate)

	firstDay, err := f.GetCellValue(scheduleSheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Monday", firstDay)

	secondStaff, err := f.GetCellValue(scheduleSheetName, "E4")
	require.NoError(t, err)
	assert.Equal(t, "Tran Mai", secondStaff)

	secondZone, err := f.GetCellValue(scheduleSheetName, "F4")
	require.NoError(t, err)
	assert.Equal(t, "Counter", secondZone)
}

func TestWeekScheduleWorkbookEmpty(t *testing.T) {
	weekStart := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)

	f, err := WeekScheduleWorkbook(weekStart, nil)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(scheduleSheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "Zone", header)
}
