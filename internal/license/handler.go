package license

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/asset-management/internal/transport"
	"github.com/frahmantamala/asset-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateLicense(dto CreateLicenseDTO) (*License, error)
	GetLicense(id int64) (*License, error)
	ListLicenses() ([]*License, error)
	UpdateLicense(id int64, dto UpdateLicenseDTO) (*License, error)
	DeleteLicense(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var dto CreateLicenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateLicense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.Service.CreateLicense(dto)
	if err != nil {
		h.Logger.Error("CreateLicense: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, l)
}

func (h *Handler) GetLicense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	l, err := h.Service.GetLicense(id)
	if err != nil {
		h.Logger.Error("GetLicense: service error", "error", err, "license_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) ListLicenses(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.Service.ListLicenses()
	if err != nil {
		h.Logger.Error("ListLicenses: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if licenses == nil {
		licenses = []*License{}
	}
	h.WriteJSON(w, http.StatusOK, licenses)
}

func (h *Handler) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdateLicenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateLicense: invalid request body", "error", err, "license_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.Service.UpdateLicense(id, dto)
	if err != nil {
		h.Logger.Error("UpdateLicense: service error", "error", err, "license_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteLicense(id); err != nil {
		h.Logger.Error("DeleteLicense: service error", "error", err, "license_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "License deleted successfully",
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid license id", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid license id")
		return 0, false
	}
	return id, true
}
