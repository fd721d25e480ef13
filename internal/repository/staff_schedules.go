package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

// ErrWorkingSlotFull is returned when a slot already holds as many assignments
// for the date as its capacity allows.
var ErrWorkingSlotFull = errors.New("working slot capacity reached for this date")

const staffScheduleColumns = `
	ss.id,
	ss.staff_id,
	s.full_name,
	ss.working_date,
	ss.working_slot_id,
	ss.zone_id,
	ss.created_at,
	ws.shift_id,
	ws.day_id,
	ws.shift_start,
	ws.shift_end,
	ws.capacity,
	z.name,
	z.description
`

func scanStaffSchedule(scan func(dst ...any) error) (*domain.StaffSchedule, error) {
	var schedule domain.StaffSchedule
	slot := domain.WorkingSlot{}
	zone := domain.Zone{}

	dst := []any{
		&schedule.ID,
		&schedule.StaffID,
		&schedule.StaffName,
		&schedule.WorkingDate,
		&schedule.WorkingSlotID,
		&schedule.ZoneID,
		&schedule.CreatedAt,
		&slot.ShiftID,
		&slot.DayID,
		&slot.ShiftStart,
		&slot.ShiftEnd,
		&slot.Capacity,
		&zone.Name,
		&zone.Description,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	slot.ID = schedule.WorkingSlotID
	zone.ID = schedule.ZoneID
	schedule.WorkingSlot = &slot
	schedule.Zone = &zone

	return &schedule, nil
}

// CreateStaffScheduleForRegister inserts the authoritative assignment record
// and stamps the zone on the approved registration in the same transaction, so
// the schedule row and the registration's zone cannot diverge. The slot's
// capacity is checked inside the transaction too; duplicates fall out of the
// unique constraint on (staff_id, working_date, working_slot_id). A
// registration that is no longer approved and unzoned rolls the whole
// transaction back with sql.ErrNoRows.
func (r *Repository) CreateStaffScheduleForRegister(schedule *domain.StaffSchedule, registerID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `SELECT capacity FROM working_slots WHERE id = $1 FOR UPDATE`

	var capacity int32
	if err := tx.QueryRowContext(ctx, query, schedule.WorkingSlotID).Scan(&capacity); err != nil {
		return err
	}

	query = `SELECT COUNT(*) FROM staff_schedules WHERE working_slot_id = $1 AND working_date = $2`

	var assigned int32
	if err := tx.QueryRowContext(ctx, query, schedule.WorkingSlotID, schedule.WorkingDate).Scan(&assigned); err != nil {
		return err
	}
	if assigned >= capacity {
		return ErrWorkingSlotFull
	}

	query = `
		INSERT INTO staff_schedules (staff_id, working_date, working_slot_id, zone_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	params := []any{schedule.StaffID, schedule.WorkingDate, schedule.WorkingSlotID, schedule.ZoneID}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&schedule.ID, &schedule.CreatedAt); err != nil {
		return err
	}

	query = `
		UPDATE working_slot_registers
		SET zone_id = $1, version = version + 1
		WHERE id = $2 AND status = $3 AND zone_id IS NULL
		RETURNING version
	`

	var version int32
	params = []any{schedule.ZoneID, registerID, domain.RegisterStatusApproved}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetStaffSchedulesInRange lists assignments dated inside [from, to] inclusive,
// with staff, slot and zone details attached.
func (r *Repository) GetStaffSchedulesInRange(from time.Time, to time.Time) ([]*domain.StaffSchedule, error) {
	query := `
		SELECT ` + staffScheduleColumns + `
		FROM staff_schedules ss
		JOIN staffs s ON s.id = ss.staff_id
		JOIN working_slots ws ON ws.id = ss.working_slot_id
		JOIN zones z ON z.id = ss.zone_id
		WHERE ss.working_date BETWEEN $1 AND $2
		ORDER BY ss.working_date, ws.shift_start, s.full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*domain.StaffSchedule{}
	for rows.Next() {
		schedule, err := scanStaffSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) GetStaffSchedulesByDate(date time.Time) ([]*domain.StaffSchedule, error) {
	return r.GetStaffSchedulesInRange(date, date)
}

func (r *Repository) GetStaffSchedulesByStaff(staffID uuid.UUID) ([]*domain.StaffSchedule, error) {
	query := `
		SELECT ` + staffScheduleColumns + `
		FROM staff_schedules ss
		JOIN staffs s ON s.id = ss.staff_id
		JOIN working_slots ws ON ws.id = ss.working_slot_id
		JOIN zones z ON z.id = ss.zone_id
		WHERE ss.staff_id = $1
		ORDER BY ss.working_date, ws.shift_start
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*domain.StaffSchedule{}
	for rows.Next() {
		schedule, err := scanStaffSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// lookupScheduleID finds the single assignment row for a (staff, date, slot)
// triple inside an open transaction.
func lookupScheduleID(ctx context.Context, tx *sql.Tx, staffID uuid.UUID, workingDate time.Time, workingSlotID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT id FROM staff_schedules
		WHERE staff_id = $1 AND working_date = $2 AND working_slot_id = $3
		FOR UPDATE
	`

	var id uuid.UUID
	if err := tx.QueryRowContext(ctx, query, staffID, workingDate, workingSlotID).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
