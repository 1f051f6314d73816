package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmind/internal/backend"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/forms"
	"matchmind/internal/upload"
)

type failure struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Fields []forms.Issue `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) failure {
	t.Helper()
	var out failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestFailErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &forms.ValidationError{Issues: []forms.Issue{{Field: "email", Reason: "must be a valid email"}}}, http.StatusBadRequest},
		{"too large", fmt.Errorf("%w: cv.pdf", upload.ErrTooLarge), http.StatusRequestEntityTooLarge},
		{"closed evaluation", fmt.Errorf("%w: approved", evaluation.ErrNotActionable), http.StatusConflict},
		{"sentinel", evaluation.ErrReasonNeeded, http.StatusBadRequest},
		{"backend 404", &backend.Error{Status: 404, Message: "not found"}, http.StatusNotFound},
		{"backend 500", &backend.Error{Status: 500, Message: "boom"}, http.StatusBadGateway},
		{"transport", fmt.Errorf("GET /employees: connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailError(rec, tc.err, "failed", "req-1")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestFailErrorKeepsBackendMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	FailError(rec, &backend.Error{Status: 500, Message: "lambda timed out"}, "dashboard_failed", "req-1")

	out := decodeFailure(t, rec)
	assert.Equal(t, "dashboard_failed", out.Error.Code)
	assert.Equal(t, "lambda timed out", out.Error.Message)
}

func TestValidatorRejectSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Enum("status", "Closed", []string{"pending", "approved"}, "unknown status")
	v.Add("limit", "must be positive")
	v.Add("ignored", "  ")

	rec := httptest.NewRecorder()
	require.True(t, v.Reject(rec, "req-1"))

	out := decodeFailure(t, rec)
	assert.Equal(t, "validation_error", out.Error.Code)
	assert.Equal(t, []forms.Issue{
		{Field: "limit", Reason: "must be positive"},
		{Field: "status", Reason: "unknown status"},
	}, out.Error.Details.Fields)
}

func TestValidatorEnumAcceptsEmptyAndCaseInsensitive(t *testing.T) {
	v := NewValidator()
	v.Enum("status", "", []string{"pending"}, "bad")
	v.Enum("status", "PENDING", []string{"pending"}, "bad")
	assert.Nil(t, v.Err())
	assert.False(t, v.Reject(httptest.NewRecorder(), ""))
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{2, 3}, Page(items, Pagination{Limit: 2, Offset: 1}))
	assert.Equal(t, []int{4, 5}, Page(items, Pagination{Limit: 10, Offset: 3}))
	assert.Equal(t, []int{}, Page(items, Pagination{Limit: 2, Offset: 9}))
}

func TestParsePaginationClamps(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/employees?limit=500&offset=-3", nil)
	p := ParsePagination(r, 50, 200)
	assert.Equal(t, Pagination{Limit: 200, Offset: 0}, p)
}
