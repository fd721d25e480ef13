package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/utils"
)

func (h *Handler) GetAllStaffs(w http.ResponseWriter, r *http.Request) {
	staffs, err := h.repository.GetAllStaffs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched staff list", staffs, len(staffs))
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName  string `json:"fullName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"phone"`
		StaffType string `json:"staffType" validate:"required,oneof=Manager Staff Chef"`
		Status    string `json:"status" validate:"omitempty,oneof=FullTime PartTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewStaff.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	status := domain.StaffStatusFullTime
	if req.Status != "" {
		status = domain.StaffStatus(req.Status)
	}

	staff := &domain.Staff{
		Username:     utils.UsernameFromFullName(req.FullName),
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		StaffType:    domain.StaffType(req.StaffType),
		Status:       status,
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "staffs_username_key":
				h.badRequest(w, r, errors.New("username already taken, please retry"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// send the generated credentials to the new staff member
	h.notifyMail(domain.MailMessage{
		Type: "staff_account",
		To:   staff.Email,
		Data: domain.StaffAccountMailData{
			FullName: staff.FullName,
			Username: staff.Username,
			Password: password,
		},
	})

	h.successResponse(w, r, "staff created", staff)
}

func (h *Handler) GetStaffInfo(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)
	h.successResponse(w, r, "fetched staff info", staff)
}

func (h *Handler) UpdateStaffInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName  *string `json:"fullName"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Phone     *string `json:"phone"`
		StaffType *string `json:"staffType" validate:"omitempty,oneof=Manager Staff Chef"`
		Status    *string `json:"status" validate:"omitempty,oneof=FullTime PartTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.StaffType != nil {
		staff.StaffType = domain.StaffType(*req.StaffType)
	}
	if req.Status != nil {
		staff.Status = domain.StaffStatus(*req.Status)
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "staff updated", staff)
}
