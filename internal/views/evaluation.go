package views

import (
	"context"
	"strings"
	"sync"

	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/resume"
	"matchmind/internal/forms"
	"matchmind/internal/upload"
)

type EvaluationState struct {
	Query        string                     `json:"query"`
	Employees    []personnel.Employee       `json:"employees"`
	Selected     *personnel.Employee        `json:"selected,omitempty"`
	Result       *evaluation.EmployeeResult `json:"result,omitempty"`
	StatusFilter evaluation.Status          `json:"statusFilter"`
	Evaluations  []evaluation.Evaluation    `json:"evaluations"`
	LastUpload   *resume.Uploaded           `json:"lastUpload,omitempty"`
	Searching    bool                       `json:"searching"`
	Evaluating   bool                       `json:"evaluating"`
	Err          string                     `json:"error,omitempty"`
}

type Evaluation struct {
	people *personnel.Service
	svc    *evaluation.Service
	calls  inflight
	Upload *upload.Uploader

	mu    sync.Mutex
	state EvaluationState
}

func NewEvaluation(people *personnel.Service, svc *evaluation.Service, uploads upload.Gateway, maxUploadBytes int64) *Evaluation {
	v := &Evaluation{people: people, svc: svc}
	v.Upload = upload.New(uploads, maxUploadBytes, v.uploaded)
	return v
}

func (v *Evaluation) State() EvaluationState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SearchEmployees fetches the roster and keeps employees whose name contains query.
func (v *Evaluation) SearchEmployees(ctx context.Context, query string) ([]personnel.Employee, error) {
	if strings.TrimSpace(query) == "" {
		v.setErr(ErrEmptyQuery)
		return nil, ErrEmptyQuery
	}
	if err := v.calls.begin("search"); err != nil {
		return nil, err
	}
	defer v.calls.end("search")

	v.mu.Lock()
	v.state.Query = query
	v.state.Searching = true
	v.state.Err = ""
	v.mu.Unlock()

	found, err := v.people.SearchByName(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Searching = false
	v.state.Err = errText(err)
	if err != nil {
		return nil, err
	}
	v.state.Employees = found
	return found, nil
}

func (v *Evaluation) Evaluate(ctx context.Context, employee personnel.Employee) (evaluation.EmployeeResult, error) {
	if err := v.calls.begin("evaluate"); err != nil {
		return evaluation.EmployeeResult{}, err
	}
	defer v.calls.end("evaluate")

	v.mu.Lock()
	v.state.Selected = &employee
	v.state.Evaluating = true
	v.state.Err = ""
	v.mu.Unlock()

	result, err := v.svc.Evaluate(ctx, employee.Identifier())

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Evaluating = false
	v.state.Err = errText(err)
	if err != nil {
		return evaluation.EmployeeResult{}, err
	}
	v.state.Result = &result
	return result, nil
}

func (v *Evaluation) LoadEvaluations(ctx context.Context, status evaluation.Status) ([]evaluation.Evaluation, error) {
	if err := v.calls.begin("list"); err != nil {
		return nil, err
	}
	defer v.calls.end("list")

	list, err := v.svc.List(ctx, status)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Err = errText(err)
	if err != nil {
		return nil, err
	}
	v.state.StatusFilter = status
	v.state.Evaluations = list
	return list, nil
}

func (v *Evaluation) Approve(ctx context.Context, evaluationID string) (evaluation.TransitionResult, error) {
	if err := v.calls.begin("action"); err != nil {
		return evaluation.TransitionResult{}, err
	}
	defer v.calls.end("action")
	if err := v.guard(evaluationID); err != nil {
		return evaluation.TransitionResult{}, err
	}
	res, err := v.svc.Approve(ctx, evaluationID)
	v.applyTransition(res, err)
	return res, err
}

func (v *Evaluation) ReviewModal(evaluationID string) *forms.Modal[forms.Review] {
	m := forms.NewReviewModal(evaluationID, func(ctx context.Context, r forms.Review) error {
		if err := v.calls.begin("action"); err != nil {
			return err
		}
		defer v.calls.end("action")
		if err := v.guard(r.EvaluationID); err != nil {
			return err
		}
		res, err := v.svc.Review(ctx, r.EvaluationID, r.Comments)
		v.applyTransition(res, err)
		return err
	})
	m.Open()
	return m
}

func (v *Evaluation) RejectModal(evaluationID string) *forms.Modal[forms.Reject] {
	m := forms.NewRejectModal(evaluationID, func(ctx context.Context, r forms.Reject) error {
		if err := v.calls.begin("action"); err != nil {
			return err
		}
		defer v.calls.end("action")
		if err := v.guard(r.EvaluationID); err != nil {
			return err
		}
		res, err := v.svc.Reject(ctx, r.EvaluationID, r.Reason)
		v.applyTransition(res, err)
		return err
	})
	m.Open()
	return m
}

// guard refuses actions on a loaded evaluation that is already closed.
// Evaluations not in the loaded list are left to the backend.
func (v *Evaluation) guard(evaluationID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.state.Evaluations {
		if e.EvaluationID == evaluationID {
			return evaluation.Guard(e)
		}
	}
	return nil
}

// applyTransition swaps the updated evaluation into a fresh copy of the
// loaded list. Slices already handed out are never written.
func (v *Evaluation) applyTransition(res evaluation.TransitionResult, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Err = errText(err)
	if err != nil {
		return
	}
	next := make([]evaluation.Evaluation, len(v.state.Evaluations))
	copy(next, v.state.Evaluations)
	for i, e := range next {
		if e.EvaluationID == res.Evaluation.EvaluationID {
			next[i] = res.Evaluation
		}
	}
	v.state.Evaluations = next
}

func (v *Evaluation) uploaded(up resume.Uploaded) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LastUpload = &up
}

func (v *Evaluation) setErr(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Err = errText(err)
}
