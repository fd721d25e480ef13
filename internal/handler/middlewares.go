package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog mangles multi-line stacks
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(authCookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "not logged in")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "invalid token")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, StaffTypeCtxKey, claims.StaffType)
		ctx = context.WithValue(ctx, SubCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) myInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subString := r.Context().Value(SubCtxKey).(string)

		sub, err := uuid.Parse(subString)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		myInfo, err := h.repository.GetStaffByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "staff account not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), MyInfoCtx, myInfo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequiredStaffType(types ...domain.StaffType) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staffTypeCtx := r.Context().Value(StaffTypeCtxKey).(string)
			staffType := domain.StaffType(staffTypeCtx)
			for _, allowed := range types {
				if staffType == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			h.errorResponse(w, r, "permission denied")
		})
	}
}

func (h *Handler) staffInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.errorResponse(w, r, "invalid staff id")
			return
		}

		staff, err := h.repository.GetStaffByID(staffID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "staff not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), StaffInfoCtx, staff)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) preventOperateInitialManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff := r.Context().Value(StaffInfoCtx).(*domain.Staff)
		if staff.Username == h.config.InitialManager.Username {
			h.errorResponse(w, r, "the initial manager account cannot be modified")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) zone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zoneID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.errorResponse(w, r, "invalid zone id")
			return
		}

		zone, err := h.repository.GetZoneByID(zoneID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "zone not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ZoneCtx, zone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) register(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		registerID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.errorResponse(w, r, "invalid registration id")
			return
		}

		register, err := h.repository.GetWorkingSlotRegisterByID(registerID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "registration not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), RegisterCtx, register)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) swapRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.errorResponse(w, r, "invalid swap request id")
			return
		}

		swap, err := h.repository.GetSwapRequestByID(swapID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "swap request not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), SwapRequestCtx, swap)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
