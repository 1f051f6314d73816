package shared

import (
	"errors"
	"net/http"

	"matchmind/internal/backend"
	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/forms"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/upload"
)

var badRequestErrors = []error{
	personnel.ErrEmptyQuery,
	analysis.ErrNoUser,
	recommendation.ErrNoProject,
	recommendation.ErrNoEmployee,
	evaluation.ErrInvalidStatus,
	evaluation.ErrCommentsNeeded,
	evaluation.ErrReasonNeeded,
	evaluation.ErrNoEmployee,
	upload.ErrNotPDF,
	upload.ErrNoFile,
}

// FailError writes the envelope for an error returned by a domain service or
// the backend client. Backend 4xx statuses pass through; every other backend
// failure is a 502 carrying the backend's message.
func FailError(w http.ResponseWriter, err error, code, requestID string) {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		v := NewValidator()
		v.Merge(verr)
		FailValidation(w, requestID, v.Err())
		return
	}
	if errors.Is(err, upload.ErrTooLarge) {
		api.Fail(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error(), requestID)
		return
	}
	if errors.Is(err, evaluation.ErrNotActionable) {
		api.Fail(w, http.StatusConflict, "not_actionable", err.Error(), requestID)
		return
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			api.Fail(w, http.StatusBadRequest, "invalid_request", err.Error(), requestID)
			return
		}
	}

	status := backend.StatusOf(err)
	if status >= 400 && status < 500 {
		api.Fail(w, status, code, err.Error(), requestID)
		return
	}
	api.Fail(w, http.StatusBadGateway, code, err.Error(), requestID)
}
