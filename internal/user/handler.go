package user

import (
	"log/slog"
	"net/http"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/auth"
	"github.com/frahmantamala/asset-management/internal/transport"
	"github.com/frahmantamala/asset-management/pkg/logger"
)

type ServiceAPI interface {
	GetByEmail(email string) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetCurrentUser handles GET /users/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	email := apperrors.UserEmailFromContext(r.Context())
	if email == "" {
		if claims, ok := auth.ClaimsFromContext(r.Context()); ok && claims != nil {
			email = claims.Email
		}
	}
	if email == "" {
		h.Logger.Error("GetCurrentUser: no authenticated user in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByEmail(email)
	if err != nil {
		h.Logger.Error("GetCurrentUser: lookup failed", "email", email, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}
