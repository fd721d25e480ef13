package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (r *Repository) CreateStaff(staff *domain.Staff) error {
	query := `
		INSERT INTO staffs (username, password_hash, full_name, phone, email, staff_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		staff.Username,
		staff.PasswordHash,
		staff.FullName,
		staff.Phone,
		staff.Email,
		staff.StaffType,
		staff.Status,
	}
	dst := []any{&staff.ID, &staff.CreatedAt, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllStaffs() ([]*domain.Staff, error) {
	query := `
		SELECT id, username, password_hash, full_name, phone, email, staff_type, status, created_at, version
		FROM staffs
		ORDER BY full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffs := []*domain.Staff{}
	for rows.Next() {
		var staff domain.Staff
		dst := []any{
			&staff.ID,
			&staff.Username,
			&staff.PasswordHash,
			&staff.FullName,
			&staff.Phone,
			&staff.Email,
			&staff.StaffType,
			&staff.Status,
			&staff.CreatedAt,
			&staff.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		staffs = append(staffs, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffs, nil
}

func (r *Repository) GetStaffByID(id uuid.UUID) (*domain.Staff, error) {
	query := `
		SELECT username, password_hash, full_name, phone, email, staff_type, status, created_at, version
		FROM staffs
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff := &domain.Staff{ID: id}
	dst := []any{
		&staff.Username,
		&staff.PasswordHash,
		&staff.FullName,
		&staff.Phone,
		&staff.Email,
		&staff.StaffType,
		&staff.Status,
		&staff.CreatedAt,
		&staff.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetStaffByUsername(username string) (*domain.Staff, error) {
	query := `
		SELECT id, password_hash, full_name, phone, email, staff_type, status, created_at, version
		FROM staffs
		WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff := &domain.Staff{Username: username}
	dst := []any{
		&staff.ID,
		&staff.PasswordHash,
		&staff.FullName,
		&staff.Phone,
		&staff.Email,
		&staff.StaffType,
		&staff.Status,
		&staff.CreatedAt,
		&staff.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) UpdateStaff(staff *domain.Staff) error {
	query := `
		UPDATE staffs
		SET
			password_hash = $1,
			full_name = $2,
			phone = $3,
			email = $4,
			staff_type = $5,
			status = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		staff.PasswordHash,
		staff.FullName,
		staff.Phone,
		staff.Email,
		staff.StaffType,
		staff.Status,
		staff.ID,
		staff.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&staff.Version); err != nil {
		return err
	}

	return nil
}
