package evaluationhandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"matchmind/internal/domain/auth"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/forms"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
)

var statusValues = []string{
	string(evaluation.StatusPending),
	string(evaluation.StatusApproved),
	string(evaluation.StatusReview),
	string(evaluation.StatusRejected),
}

type Handler struct {
	Service  *evaluation.Service
	Reporter *evaluation.Reporter
	Perms    middleware.PermissionStore
	Log      *zap.Logger
}

func NewHandler(service *evaluation.Service, reporter *evaluation.Reporter, perms middleware.PermissionStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Service: service, Reporter: reporter, Perms: perms, Log: logger.Named("evaluations")}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermEvaluationsRead, h.Perms)).Get("/evaluations", h.handleList)
	r.With(middleware.RequirePermission(auth.PermEvaluationsWrite, h.Perms)).Post("/evaluations/{evaluationID}/approve", h.handleApprove)
	r.With(middleware.RequirePermission(auth.PermEvaluationsWrite, h.Perms)).Post("/evaluations/{evaluationID}/review", h.handleReview)
	r.With(middleware.RequirePermission(auth.PermEvaluationsWrite, h.Perms)).Post("/evaluations/{evaluationID}/reject", h.handleReject)
	r.With(middleware.RequirePermission(auth.PermAnalysisRun, h.Perms)).Post("/employees/{employeeID}/evaluate", h.handleEvaluate)
	r.With(middleware.RequirePermission(auth.PermAnalysisRun, h.Perms)).Post("/employees/{employeeID}/evaluation-report", h.handleReport)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	v := shared.NewValidator()
	v.Enum("status", status, statusValues, "must be one of pending, approved, review, rejected")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	list, err := h.Service.List(r.Context(), evaluation.Status(status))
	if err != nil {
		shared.FailError(w, err, "evaluations_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Approve(r.Context(), chi.URLParam(r, "evaluationID"))
	if err != nil {
		shared.FailError(w, err, "evaluation_approve_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	var payload forms.Review
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.EvaluationID = chi.URLParam(r, "evaluationID")
	prepared, err := forms.PrepareReview(payload)
	if err != nil {
		shared.FailError(w, err, "evaluation_review_failed", middleware.GetRequestID(r.Context()))
		return
	}
	result, err := h.Service.Review(r.Context(), prepared.EvaluationID, prepared.Comments)
	if err != nil {
		shared.FailError(w, err, "evaluation_review_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	var payload forms.Reject
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.EvaluationID = chi.URLParam(r, "evaluationID")
	prepared, err := forms.PrepareReject(payload)
	if err != nil {
		shared.FailError(w, err, "evaluation_reject_failed", middleware.GetRequestID(r.Context()))
		return
	}
	result, err := h.Service.Reject(r.Context(), prepared.EvaluationID, prepared.Reason)
	if err != nil {
		shared.FailError(w, err, "evaluation_reject_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Evaluate(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.FailError(w, err, "evaluate_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	result, err := h.Service.Evaluate(r.Context(), employeeID)
	if err != nil {
		shared.FailError(w, err, "evaluation_report_failed", middleware.GetRequestID(r.Context()))
		return
	}
	data, err := h.Reporter.Render(result)
	if err != nil {
		h.Log.Error("evaluation report render failed", zap.String("employeeId", employeeID), zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "evaluation_report_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "evaluation-"+employeeID+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Log.Warn("evaluation report write failed", zap.String("employeeId", employeeID), zap.Error(err))
	}
}
