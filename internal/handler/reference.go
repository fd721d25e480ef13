package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (h *Handler) GetAllDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.repository.GetAllDays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched days", days, len(days))
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shifts_name_key":
			h.badRequest(w, r, errors.New("a shift with this name already exists"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched shifts", shifts, len(shifts))
}

func (h *Handler) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	zone := &domain.Zone{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repository.CreateZone(zone); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "zones_name_key":
			h.badRequest(w, r, errors.New("a zone with this name already exists"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "zone created", zone)
}

func (h *Handler) GetAllZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.repository.GetAllZones()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched zones", zones, len(zones))
}

func (h *Handler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	zone := r.Context().Value(ZoneCtx).(*domain.Zone)

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}

	if err := h.repository.UpdateZone(zone); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "zones_name_key":
			h.badRequest(w, r, errors.New("a zone with this name already exists"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "zone was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "zone updated", zone)
}
