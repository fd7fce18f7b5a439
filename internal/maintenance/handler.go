package maintenance

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
	AddRecord(dto CreateRecordDTO) (*Record, error)
	ListAll() ([]*Record, error)
	ListByAsset(assetID string) ([]*Record, error)
	DeleteRecord(id int64) error
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

func (h *Handler) AddRecord(w http.ResponseWriter, r *http.Request) {
	var dto CreateRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddRecord: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.Service.AddRecord(dto)
	if err != nil {
		h.Logger.Error("AddRecord: service error", "error", err, "asset_id", dto.AssetID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListAll()
	if err != nil {
		h.Logger.Error("ListRecords: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Record{}
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) ListByAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetID")

	records, err := h.Service.ListByAsset(assetID)
	if err != nil {
		h.Logger.Error("ListByAsset: service error", "error", err, "asset_id", assetID)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Record{}
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteRecord: invalid record id", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.Service.DeleteRecord(id); err != nil {
		h.Logger.Error("DeleteRecord: service error", "error", err, "record_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Maintenance record deleted successfully",
	})
}
