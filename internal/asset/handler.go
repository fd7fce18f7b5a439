package asset

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-management/internal/transport"
	"github.com/frahmantamala/asset-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListAssets(filters ListFilters) ([]*Asset, error)
	CreateAsset(dto CreateAssetDTO) (*Asset, error)
	UpdateAsset(id string, dto UpdateAssetDTO) (*Asset, error)
	DeleteAsset(id string) error
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

func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := ListFilters{
		Brand:    q.Get("brand"),
		Type:     q.Get("type"),
		Status:   q.Get("status"),
		Assignee: q.Get("assignee"),
		Search:   q.Get("search"),
	}

	assets, err := h.Service.ListAssets(filters)
	if err != nil {
		h.Logger.Error("ListAssets: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if assets == nil {
		assets = []*Asset{}
	}
	h.WriteJSON(w, http.StatusOK, assets)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var dto CreateAssetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateAsset: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateAsset(dto)
	if err != nil {
		h.Logger.Error("CreateAsset: service error", "error", err, "serial", dto.Serial)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateAsset: asset created", "asset_id", a.ID)
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateAssetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateAsset: invalid request body", "error", err, "asset_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateAsset(id, dto)
	if err != nil {
		h.Logger.Error("UpdateAsset: service error", "error", err, "asset_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteAsset(id); err != nil {
		h.Logger.Error("DeleteAsset: service error", "error", err, "asset_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Asset '" + id + "' deleted successfully",
	})
}
