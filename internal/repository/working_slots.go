package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (r *Repository) CreateWorkingSlot(slot *domain.WorkingSlot) error {
	query := `
		INSERT INTO working_slots (shift_id, day_id, shift_start, shift_end, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{slot.ShiftID, slot.DayID, slot.ShiftStart, slot.ShiftEnd, slot.Capacity}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&slot.ID, &slot.CreatedAt, &slot.Version); err != nil {
		return err
	}

	return nil
}

// GetAllWorkingSlots lists every working slot, optionally narrowed to one day.
func (r *Repository) GetAllWorkingSlots(dayID *uuid.UUID) ([]*domain.WorkingSlot, error) {
	query := `
		SELECT id, shift_id, day_id, shift_start, shift_end, capacity, created_at, version
		FROM working_slots
		WHERE $1::uuid IS NULL OR day_id = $1
		ORDER BY shift_start
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []*domain.WorkingSlot{}
	for rows.Next() {
		var slot domain.WorkingSlot
		dst := []any{
			&slot.ID,
			&slot.ShiftID,
			&slot.DayID,
			&slot.ShiftStart,
			&slot.ShiftEnd,
			&slot.Capacity,
			&slot.CreatedAt,
			&slot.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *Repository) GetWorkingSlotByID(id uuid.UUID) (*domain.WorkingSlot, error) {
	query := `
		SELECT shift_id, day_id, shift_start, shift_end, capacity, created_at, version
		FROM working_slots
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	slot := &domain.WorkingSlot{ID: id}
	dst := []any{
		&slot.ShiftID,
		&slot.DayID,
		&slot.ShiftStart,
		&slot.ShiftEnd,
		&slot.Capacity,
		&slot.CreatedAt,
		&slot.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return slot, nil
}
