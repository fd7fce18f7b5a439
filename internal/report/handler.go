package report

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-management/internal/transport"
	"github.com/frahmantamala/asset-management/pkg/logger"
)

type ServiceAPI interface {
	Summary() (*SummaryReport, error)
	MaintenanceCosts() (*MaintenanceCostReport, error)
	AssetStats() (*AssetStatsReport, error)
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

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Summary()
	if err != nil {
		h.Logger.Error("Summary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) MaintenanceCosts(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.MaintenanceCosts()
	if err != nil {
		h.Logger.Error("MaintenanceCosts: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) AssetStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.AssetStats()
	if err != nil {
		h.Logger.Error("AssetStats: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, report)
}
