package schedule

import (
	"fmt"
	"time"
)

const slotIntervalMinutes = 15

// GenerateAllSlots returns the fixed catalog of day time slots: one "HH:MM"
// entry per 15-minute boundary from 00:00 through 23:45, in ascending order.
func GenerateAllSlots() []string {
	slots := make([]string, 0, 24*60/slotIntervalMinutes)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += slotIntervalMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// FilterValidSlots keeps the slots still bookable at now. For any target date
// other than now's calendar day the catalog is returned unchanged. For today,
// now's minute is rounded up to the next 15-minute boundary and a slot
// survives when its hour is past now's hour, or it sits in now's hour at or
// after that boundary. A boundary of 60 matches no minute, so the whole
// current hour drops and the filter skips to the next hour.
func FilterValidSlots(all []string, targetDate time.Time, now time.Time) []string {
	if !SameDay(targetDate, now) {
		return all
	}

	minuteCeil := (now.Minute() + slotIntervalMinutes - 1) / slotIntervalMinutes * slotIntervalMinutes

	valid := make([]string, 0, len(all))
	for _, slot := range all {
		var hour, minute int
		if _, err := fmt.Sscanf(slot, "%d:%d", &hour, &minute); err != nil {
			continue
		}
		if hour > now.Hour() || (hour == now.Hour() && minute >= minuteCeil) {
			valid = append(valid, slot)
		}
	}

	return valid
}
