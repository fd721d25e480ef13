package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (h *Handler) GetAllConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.repository.GetAllConfigs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.listResponse(w, r, "fetched configs", configs, len(configs))
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.repository.GetConfigByKey(chi.URLParam(r, "key"))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "config not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "fetched config", config)
}

func (h *Handler) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key" validate:"required"`
		Value string `json:"value" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	config := &domain.Config{
		Key:   req.Key,
		Value: req.Value,
	}

	if err := h.repository.UpsertConfig(config); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "config saved", config)
}
