package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

// StaffCalendar builds an iCalendar feed with one event per assignment, so a
// staff member can subscribe to their own schedule from any calendar client.
func StaffCalendar(staff *domain.Staff, schedules []*domain.StaffSchedule) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pizza-shift-manager//schedule//EN")
	cal.SetName(fmt.Sprintf("%s's shifts", staff.FullName))

	for _, schedule := range schedules {
		start, err := slotTime(schedule.WorkingDate, schedule.WorkingSlot.ShiftStart)
		if err != nil {
			return nil, err
		}
		end, err := slotTime(schedule.WorkingDate, schedule.WorkingSlot.ShiftEnd)
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			// overnight slot, the end time belongs to the next day
			end = end.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(fmt.Sprintf("%s@pizza-shift-manager", schedule.ID))
		event.SetCreatedTime(schedule.CreatedAt)
		event.SetDtStampTime(schedule.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("Shift in %s", schedule.Zone.Name))
		event.SetLocation(schedule.Zone.Name)
	}

	return cal, nil
}

func slotTime(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, date.Location()), nil
}
