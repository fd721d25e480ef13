package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

const registerColumns = `
	wsr.id,
	wsr.staff_id,
	s.full_name,
	wsr.working_date,
	wsr.working_slot_id,
	wsr.register_date,
	wsr.status,
	wsr.zone_id,
	wsr.created_at,
	wsr.version,
	ws.shift_id,
	ws.day_id,
	ws.shift_start,
	ws.shift_end,
	ws.capacity
`

func scanRegister(scan func(dst ...any) error) (*domain.WorkingSlotRegister, error) {
	var register domain.WorkingSlotRegister
	slot := domain.WorkingSlot{}

	dst := []any{
		&register.ID,
		&register.StaffID,
		&register.StaffName,
		&register.WorkingDate,
		&register.WorkingSlotID,
		&register.RegisterDate,
		&register.Status,
		&register.ZoneID,
		&register.CreatedAt,
		&register.Version,
		&slot.ShiftID,
		&slot.DayID,
		&slot.ShiftStart,
		&slot.ShiftEnd,
		&slot.Capacity,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	slot.ID = register.WorkingSlotID
	register.WorkingSlot = &slot

	return &register, nil
}

func (r *Repository) CreateWorkingSlotRegister(register *domain.WorkingSlotRegister) error {
	query := `
		INSERT INTO working_slot_registers (staff_id, working_date, working_slot_id, register_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{register.StaffID, register.WorkingDate, register.WorkingSlotID, register.RegisterDate}
	dst := []any{&register.ID, &register.Status, &register.CreatedAt, &register.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllWorkingSlotRegisters() ([]*domain.WorkingSlotRegister, error) {
	query := `
		SELECT ` + registerColumns + `
		FROM working_slot_registers wsr
		JOIN staffs s ON s.id = wsr.staff_id
		JOIN working_slots ws ON ws.id = wsr.working_slot_id
		ORDER BY wsr.working_date, wsr.register_date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registers := []*domain.WorkingSlotRegister{}
	for rows.Next() {
		register, err := scanRegister(rows.Scan)
		if err != nil {
			return nil, err
		}
		registers = append(registers, register)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registers, nil
}

func (r *Repository) GetWorkingSlotRegisterByID(id uuid.UUID) (*domain.WorkingSlotRegister, error) {
	query := `
		SELECT ` + registerColumns + `
		FROM working_slot_registers wsr
		JOIN staffs s ON s.id = wsr.staff_id
		JOIN working_slots ws ON ws.id = wsr.working_slot_id
		WHERE wsr.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	row := r.dbpool.QueryRowContext(ctx, query, id)
	return scanRegister(row.Scan)
}

// ApproveWorkingSlotRegister flips an on-hold registration to Approved with no
// zone. The guard on status makes a concurrent second approval come back as
// sql.ErrNoRows instead of silently succeeding.
func (r *Repository) ApproveWorkingSlotRegister(id uuid.UUID) error {
	query := `
		UPDATE working_slot_registers
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32
	params := []any{domain.RegisterStatusApproved, id, domain.RegisterStatusOnhold}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) RejectWorkingSlotRegister(id uuid.UUID) error {
	query := `
		UPDATE working_slot_registers
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32
	params := []any{domain.RegisterStatusRejected, id, domain.RegisterStatusOnhold}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return err
	}

	return nil
}

// CountStaffRegistersInRange counts a staff member's registrations dated
// inside [from, to], both bounds inclusive. Used for the weekly limit.
func (r *Repository) CountStaffRegistersInRange(staffID uuid.UUID, from time.Time, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM working_slot_registers
		WHERE staff_id = $1 AND working_date BETWEEN $2 AND $3 AND status <> $4
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int
	params := []any{staffID, from, to, domain.RegisterStatusRejected}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
