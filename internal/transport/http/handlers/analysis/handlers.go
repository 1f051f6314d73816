package analysishandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/auth"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
)

type Handler struct {
	Service *analysis.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *analysis.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAnalysisRun, h.Perms)).Post("/domain-analysis", h.handleDomainAnalysis)
	r.With(middleware.RequirePermission(auth.PermProjectsRead, h.Perms)).Get("/domain-portfolio", h.handlePortfolio)
	r.With(middleware.RequirePermission(auth.PermAnalysisRun, h.Perms)).Post("/employees/{employeeID}/quantitative", h.handleQuantitative)
	r.With(middleware.RequirePermission(auth.PermAnalysisRun, h.Perms)).Post("/employees/{employeeID}/qualitative", h.handleQualitative)
}

func (h *Handler) handleDomainAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Analyze(r.Context())
	if err != nil {
		shared.FailError(w, err, "domain_analysis_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.Service.Portfolio(r.Context())
	if err != nil {
		shared.FailError(w, err, "domain_portfolio_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, portfolio, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleQuantitative(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Quantitative(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.FailError(w, err, "quantitative_analysis_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleQualitative(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Qualitative(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.FailError(w, err, "qualitative_analysis_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
