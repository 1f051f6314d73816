package personnelhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmind/internal/domain/auth"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/forms"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
)

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

type Handler struct {
	Service *personnel.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *personnel.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/employees", h.handleList)
	r.With(middleware.RequirePermission(auth.PermPersonnelWrite, h.Perms)).Post("/employees", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/personnel/search", h.handleSearch)
}

type listResponse struct {
	Members []personnel.Member `json:"members"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.Members(r.Context())
	if err != nil {
		shared.FailError(w, err, "employees_failed", middleware.GetRequestID(r.Context()))
		return
	}
	filtered := personnel.FilterMembers(members, r.URL.Query().Get("q"))
	page := shared.ParsePagination(r, defaultPageSize, maxPageSize)
	api.Success(w, listResponse{
		Members: shared.Page(filtered, page),
		Total:   len(filtered),
		Limit:   page.Limit,
		Offset:  page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload personnel.NewEmployee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	prepared, err := forms.PrepareEmployee(payload)
	if err != nil {
		shared.FailError(w, err, "employee_create_failed", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Service.Register(r.Context(), prepared)
	if err != nil {
		shared.FailError(w, err, "employee_create_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	found, err := h.Service.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		shared.FailError(w, err, "personnel_search_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, found, middleware.GetRequestID(r.Context()))
}
