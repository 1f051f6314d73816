package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmind/internal/domain/auth"
	"matchmind/internal/domain/dashboard"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
)

type Handler struct {
	Service *dashboard.Service
	Perms   middleware.PermissionStore
}

type response struct {
	dashboard.Metrics
	Utilization float64 `json:"utilization"`
}

func NewHandler(service *dashboard.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermDashboardRead, h.Perms)).Get("/dashboard", h.handleMetrics)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.Metrics(r.Context())
	if err != nil {
		shared.FailError(w, err, "dashboard_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, response{Metrics: metrics, Utilization: metrics.Utilization()}, middleware.GetRequestID(r.Context()))
}
