package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (r *Repository) GetAllDays() ([]*domain.Day, error) {
	query := `SELECT id, name FROM days ORDER BY sort_order`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []*domain.Day{}
	for rows.Next() {
		var day domain.Day
		if err := rows.Scan(&day.ID, &day.Name); err != nil {
			return nil, err
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func (r *Repository) GetDayByID(id uuid.UUID) (*domain.Day, error) {
	query := `SELECT name FROM days WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	day := &domain.Day{ID: id}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&day.Name); err != nil {
		return nil, err
	}

	return day, nil
}

func (r *Repository) CreateShift(shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, shift.Name, shift.Description).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	query := `SELECT id, name, description, created_at, version FROM shifts ORDER BY created_at`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []*domain.Shift{}
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(&shift.ID, &shift.Name, &shift.Description, &shift.CreatedAt, &shift.Version); err != nil {
			return nil, err
		}
		shifts = append(shifts, &shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id uuid.UUID) (*domain.Shift, error) {
	query := `SELECT name, description, created_at, version FROM shifts WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{ID: id}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&shift.Name, &shift.Description, &shift.CreatedAt, &shift.Version); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) CreateZone(zone *domain.Zone) error {
	query := `
		INSERT INTO zones (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, zone.Name, zone.Description).Scan(&zone.ID, &zone.CreatedAt, &zone.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllZones() ([]*domain.Zone, error) {
	query := `SELECT id, name, description, created_at, version FROM zones ORDER BY name`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []*domain.Zone{}
	for rows.Next() {
		var zone domain.Zone
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Description, &zone.CreatedAt, &zone.Version); err != nil {
			return nil, err
		}
		zones = append(zones, &zone)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func (r *Repository) GetZoneByID(id uuid.UUID) (*domain.Zone, error) {
	query := `SELECT name, description, created_at, version FROM zones WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	zone := &domain.Zone{ID: id}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&zone.Name, &zone.Description, &zone.CreatedAt, &zone.Version); err != nil {
		return nil, err
	}

	return zone, nil
}

func (r *Repository) UpdateZone(zone *domain.Zone) error {
	query := `
		UPDATE zones
		SET name = $1, description = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, zone.Name, zone.Description, zone.ID, zone.Version).Scan(&zone.Version); err != nil {
		return err
	}

	return nil
}
