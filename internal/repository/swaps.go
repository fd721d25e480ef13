package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

// ErrAssignmentMissing is returned when a swap decision references a
// (staff, date, slot) triple that no longer has an assignment row.
var ErrAssignmentMissing = errors.New("no assignment exists for this staff member, date and working slot")

const swapColumns = `
	swr.id,
	swr.employee_from_id,
	sf.full_name,
	swr.working_slot_from_id,
	swr.working_date_from,
	swr.employee_to_id,
	st.full_name,
	swr.working_slot_to_id,
	swr.working_date_to,
	swr.request_date,
	swr.status,
	swr.created_at,
	swr.version
`

func scanSwapRequest(scan func(dst ...any) error) (*domain.SwapWorkingSlotRequest, error) {
	var swap domain.SwapWorkingSlotRequest

	dst := []any{
		&swap.ID,
		&swap.EmployeeFromID,
		&swap.EmployeeFromName,
		&swap.WorkingSlotFromID,
		&swap.WorkingDateFrom,
		&swap.EmployeeToID,
		&swap.EmployeeToName,
		&swap.WorkingSlotToID,
		&swap.WorkingDateTo,
		&swap.RequestDate,
		&swap.Status,
		&swap.CreatedAt,
		&swap.Version,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	return &swap, nil
}

func (r *Repository) CreateSwapRequest(swap *domain.SwapWorkingSlotRequest) error {
	query := `
		INSERT INTO swap_working_slot_requests (
			employee_from_id,
			working_slot_from_id,
			working_date_from,
			employee_to_id,
			working_slot_to_id,
			working_date_to,
			request_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		swap.EmployeeFromID,
		swap.WorkingSlotFromID,
		swap.WorkingDateFrom,
		swap.EmployeeToID,
		swap.WorkingSlotToID,
		swap.WorkingDateTo,
		swap.RequestDate,
	}
	dst := []any{&swap.ID, &swap.Status, &swap.CreatedAt, &swap.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSwapRequests() ([]*domain.SwapWorkingSlotRequest, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swap_working_slot_requests swr
		JOIN staffs sf ON sf.id = swr.employee_from_id
		JOIN staffs st ON st.id = swr.employee_to_id
		ORDER BY swr.request_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	swaps := []*domain.SwapWorkingSlotRequest{}
	for rows.Next() {
		swap, err := scanSwapRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, swap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return swaps, nil
}

func (r *Repository) GetSwapRequestByID(id uuid.UUID) (*domain.SwapWorkingSlotRequest, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swap_working_slot_requests swr
		JOIN staffs sf ON sf.id = swr.employee_from_id
		JOIN staffs st ON st.id = swr.employee_to_id
		WHERE swr.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	row := r.dbpool.QueryRowContext(ctx, query, id)
	return scanSwapRequest(row.Scan)
}

// ApproveSwapRequest flips a pending request to Approved and exchanges the two
// staff members' assignments in the same transaction, so the status change and
// both schedule updates commit or roll back together. The status guard turns a
// concurrent second decision into sql.ErrNoRows.
func (r *Repository) ApproveSwapRequest(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE swap_working_slot_requests
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING
			employee_from_id,
			working_slot_from_id,
			working_date_from,
			employee_to_id,
			working_slot_to_id,
			working_date_to
	`

	var (
		fromStaff, fromSlot uuid.UUID
		fromDate            time.Time
		toStaff, toSlot     uuid.UUID
		toDate              time.Time
	)
	params := []any{domain.SwapStatusApproved, id, domain.SwapStatusPendingManagerApprove}
	dst := []any{&fromStaff, &fromSlot, &fromDate, &toStaff, &toSlot, &toDate}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	// Pin down both rows by id before touching either, otherwise the second
	// lookup could match the row the first update just rewrote.
	fromScheduleID, err := lookupScheduleID(ctx, tx, fromStaff, fromDate, fromSlot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAssignmentMissing
		}
		return err
	}
	toScheduleID, err := lookupScheduleID(ctx, tx, toStaff, toDate, toSlot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAssignmentMissing
		}
		return err
	}

	// Both sides of a swap may share the same date and slot. Deferring the
	// uniqueness check to commit lets the exchange pass through the transient
	// state where both rows briefly name the same staff member.
	if _, err := tx.ExecContext(ctx, `SET CONSTRAINTS staff_schedules_staff_date_slot_key DEFERRED`); err != nil {
		return err
	}

	query = `UPDATE staff_schedules SET staff_id = $1 WHERE id = $2`

	if _, err := tx.ExecContext(ctx, query, toStaff, fromScheduleID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, fromStaff, toScheduleID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) RejectSwapRequest(id uuid.UUID) error {
	query := `
		UPDATE swap_working_slot_requests
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32
	params := []any{domain.SwapStatusRejected, id, domain.SwapStatusPendingManagerApprove}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return err
	}

	return nil
}
