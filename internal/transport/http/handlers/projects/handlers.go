package projecthandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmind/internal/domain/auth"
	"matchmind/internal/domain/project"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/forms"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
)

type Handler struct {
	Projects        *project.Service
	Recommendations *recommendation.Service
	Perms           middleware.PermissionStore
}

func NewHandler(projects *project.Service, recommendations *recommendation.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Projects: projects, Recommendations: recommendations, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermProjectsRead, h.Perms)).Get("/projects", h.handleList)
	r.With(middleware.RequirePermission(auth.PermProjectsWrite, h.Perms)).Post("/projects", h.handleCreate)
	r.With(middleware.RequirePermission(auth.PermProjectsRead, h.Perms)).Post("/projects/{projectID}/recommendations", h.handleRecommend)
	r.With(middleware.RequirePermission(auth.PermProjectsAssign, h.Perms)).Post("/projects/{projectID}/assign", h.handleAssign)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Projects.Summaries(r.Context())
	if err != nil {
		shared.FailError(w, err, "projects_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, project.FilterSummaries(summaries, r.URL.Query().Get("q")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload project.NewProject
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	prepared, err := forms.PrepareProject(payload)
	if err != nil {
		shared.FailError(w, err, "project_create_failed", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Projects.Register(r.Context(), prepared)
	if err != nil {
		shared.FailError(w, err, "project_create_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	result, err := h.Recommendations.Recommend(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		shared.FailError(w, err, "recommendations_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

type assignRequest struct {
	EmployeeID   string `json:"employee_id"`
	Availability string `json:"availability"`
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload assignRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	assignment, err := forms.PrepareAssignment(forms.Assignment{
		ProjectID:    chi.URLParam(r, "projectID"),
		EmployeeID:   payload.EmployeeID,
		Availability: payload.Availability,
	})
	if err != nil {
		shared.FailError(w, err, "assign_failed", middleware.GetRequestID(r.Context()))
		return
	}
	result, err := h.Recommendations.Assign(r.Context(), assignment.ProjectID, assignment.EmployeeID)
	if err != nil {
		shared.FailError(w, err, "assign_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
