package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/utils"
)

// slotTemplate describes the working slots opened on every day for one shift.
type slotTemplate struct {
	ShiftName  string
	ShiftStart string
	ShiftEnd   string
	Capacity   int32
}

var defaultShifts = []domain.Shift{
	{Name: "Morning", Description: "Opening, prep and lunch service"},
	{Name: "Afternoon", Description: "Lunch overlap through early dinner"},
	{Name: "Evening", Description: "Dinner service and closing"},
}

var defaultSlots = []slotTemplate{
	{"Morning", "08:00:00", "12:00:00", 4},
	{"Morning", "10:00:00", "14:00:00", 3},
	{"Afternoon", "12:00:00", "17:00:00", 4},
	{"Afternoon", "14:00:00", "18:00:00", 3},
	{"Evening", "17:00:00", "22:00:00", 5},
	{"Evening", "18:00:00", "23:00:00", 4},
}

var defaultZones = []domain.Zone{
	{Name: "Dining Hall", Description: "Main floor tables and service"},
	{Name: "Kitchen", Description: "Pizza ovens and prep stations"},
	{Name: "Counter", Description: "Cashier and takeaway pickup"},
	{Name: "Delivery", Description: "Delivery dispatch and packing"},
}

// ReferenceData inserts the default shifts, per-day working slots and zones.
// Days are created by the initial migration.
func ReferenceData(r *repository.Repository) {
	shiftIDs := map[string]domain.Shift{}
	for _, template := range defaultShifts {
		shift := template
		if err := r.CreateShift(&shift); err != nil {
			slog.Error("failed to create shift", "name", shift.Name, "error", err)
			return
		}
		shiftIDs[shift.Name] = shift
	}

	days, err := r.GetAllDays()
	if err != nil {
		slog.Error("failed to load days", "error", err)
		return
	}

	for _, day := range days {
		for _, template := range defaultSlots {
			slot := &domain.WorkingSlot{
				ShiftID:    shiftIDs[template.ShiftName].ID,
				DayID:      day.ID,
				ShiftStart: template.ShiftStart,
				ShiftEnd:   template.ShiftEnd,
				Capacity:   template.Capacity,
			}
			if err := r.CreateWorkingSlot(slot); err != nil {
				slog.Error("failed to create working slot", "day", day.Name, "start", template.ShiftStart, "error", err)
				return
			}
		}
	}

	for _, template := range defaultZones {
		zone := template
		if err := r.CreateZone(&zone); err != nil {
			slog.Error("failed to create zone", "name", zone.Name, "error", err)
			return
		}
	}

	slog.Info("reference data seeded", "shifts", len(defaultShifts), "slotsPerDay", len(defaultSlots), "zones", len(defaultZones))
}

var firstNames = []string{"Minh", "Linh", "An", "Huy", "Thao", "Nam", "Mai", "Khang", "Vy", "Duc"}
var lastNames = []string{"Nguyen", "Tran", "Le", "Pham", "Hoang", "Vo", "Dang", "Bui"}

// RandomStaffs inserts n staff members with the shared seed password.
func RandomStaffs(r *repository.Repository, password string, n int) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash the seed password", "error", err)
		return
	}

	types := []domain.StaffType{domain.StaffTypeStaff, domain.StaffTypeStaff, domain.StaffTypeStaff, domain.StaffTypeChef}
	statuses := []domain.StaffStatus{domain.StaffStatusFullTime, domain.StaffStatusPartTime}

	for i := 0; i < n; i++ {
		fullName := fmt.Sprintf("%s %s", lastNames[rand.Intn(len(lastNames))], firstNames[rand.Intn(len(firstNames))])
		staff := &domain.Staff{
			Username:     utils.UsernameFromFullName(fullName),
			PasswordHash: string(passwordHash),
			FullName:     fullName,
			Phone:        fmt.Sprintf("09%08d", rand.Intn(100000000)),
			Email:        fmt.Sprintf("%s@example.com", utils.UsernameFromFullName(fullName)),
			StaffType:    types[rand.Intn(len(types))],
			Status:       statuses[rand.Intn(len(statuses))],
		}
		if err := r.CreateStaff(staff); err != nil {
			slog.Error("failed to create staff", "username", staff.Username, "error", err)
			continue
		}
	}

	slog.Info("random staff seeded", "count", n)
}

// RandomRegistrations files one pending registration per staff member for a
// random working slot in the week containing now.
func RandomRegistrations(r *repository.Repository, now time.Time) {
	staffs, err := r.GetAllStaffs()
	if err != nil {
		slog.Error("failed to load staff", "error", err)
		return
	}

	slots, err := r.GetAllWorkingSlots(nil)
	if err != nil {
		slog.Error("failed to load working slots", "error", err)
		return
	}
	if len(slots) == 0 {
		slog.Error("no working slots to register for, seed reference data first")
		return
	}

	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := now.AddDate(0, 0, 1-weekday)

	count := 0
	for _, staff := range staffs {
		if staff.StaffType == domain.StaffTypeManager {
			continue
		}

		slot := slots[rand.Intn(len(slots))]
		register := &domain.WorkingSlotRegister{
			StaffID:       staff.ID,
			WorkingDate:   monday.AddDate(0, 0, rand.Intn(7)),
			WorkingSlotID: slot.ID,
			RegisterDate:  now,
		}
		if err := r.CreateWorkingSlotRegister(register); err != nil {
			slog.Error("failed to create registration", "staff", staff.Username, "error", err)
			continue
		}
		count++
	}

	slog.Info("random registrations seeded", "count", count)
}
