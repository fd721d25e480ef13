package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func TestStaffCalendar(t *testing.T) {
	staff := &domain.Staff{FullName: "Nguyen An"}
	schedules := []*domain.StaffSchedule{
		testSchedule("Nguyen An", "Kitchen", "2024-05-13", "08:00:00", "12:00:00"),
		testSchedule("Nguyen An", "Dining Hall", "2024-05-14", "17:00:00", "22:00:00"),
	}

	cal, err := StaffCalendar(staff, schedules)
	require.NoError(t, err)

	serialized := cal.Serialize()
	assert.Equal(t, 2, strings.Count(serialized, "BEGIN:VEVENT"))
	assert.Contains(t, serialized, "SUMMARY:Shift in Kitchen")
	assert.Contains(t, serialized, "DTSTART:20240513T080000Z")
	assert.Contains(t, serialized, "DTEND:20240513T120000Z")
	assert.Contains(t, serialized, "LOCATION:Dining Hall")
}

func TestStaffCalendarOvernightSlot(t *testing.T) {
	staff := &domain.Staff{FullName: "Tran Mai"}
	schedules := []*domain.StaffSchedule{
		testSchedule("Tran Mai", "Counter", "2024-05-13", "22:00:00", "02:00:00"),
	}

	cal, err := StaffCalendar(staff, schedules)
	require.NoError(t, err)

	serialized := cal.Serialize()
	assert.Contains(t, serialized, "DTSTART:20240513T220000Z")
	assert.Contains(t, serialized, "DTEND:20240514T020000Z")
}

func TestStaffCalendarBadClock(t *testing.T) {
	staff := &domain.Staff{FullName: "Tran Mai"}
	schedules := []*domain.StaffSchedule{
		testSchedule("Tran Mai", "Counter", "2024-05-13", "not-a-time", "02:00:00"),
	}

	_, err := StaffCalendar(staff, schedules)
	assert.Error(t, err)
}
