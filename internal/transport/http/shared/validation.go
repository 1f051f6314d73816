package shared

import (
	"net/http"
	"sort"
	"strings"

	"matchmind/internal/forms"
	"matchmind/internal/transport/http/api"
)

// Validator collects query and path parameter issues in the same
// {field, reason} shape that form validation produces.
type Validator struct {
	issues []forms.Issue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]forms.Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, forms.Issue{Field: strings.TrimSpace(field), Reason: reason})
}

// Enum accepts an empty value or any allowed value, ignoring case.
func (v *Validator) Enum(field, value string, allowed []string, reason string) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return
	}
	for _, candidate := range allowed {
		if normalized == strings.ToLower(candidate) {
			return
		}
	}
	v.Add(field, reason)
}

// Merge copies the issues of a form validation error.
func (v *Validator) Merge(err *forms.ValidationError) {
	if err == nil {
		return
	}
	for _, issue := range err.Issues {
		v.Add(issue.Field, issue.Reason)
	}
}

// Err returns the collected issues sorted by field, or nil.
func (v *Validator) Err() *forms.ValidationError {
	if len(v.issues) == 0 {
		return nil
	}
	out := make([]forms.Issue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return &forms.ValidationError{Issues: out}
}

// Reject writes a 400 envelope and reports true when any issue was collected.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	verr := v.Err()
	if verr == nil {
		return false
	}
	FailValidation(w, requestID, verr)
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, verr *forms.ValidationError) {
	issues := []forms.Issue{}
	if verr != nil {
		issues = verr.Issues
	}
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
