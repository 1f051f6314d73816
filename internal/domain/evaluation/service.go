package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus  = errors.New("invalid evaluation status")
	ErrCommentsNeeded = errors.New("review comments are required")
	ErrReasonNeeded   = errors.New("rejection reason is required")
	ErrNoEmployee     = errors.New("employee is required")
	ErrNotActionable  = errors.New("evaluation is already closed")
)

type Gateway interface {
	ListEvaluations(ctx context.Context, status Status) ([]Evaluation, error)
	TransitionEvaluation(ctx context.Context, evaluationID string, t Transition) (TransitionResult, error)
	EvaluateEmployee(ctx context.Context, employeeID string) (EmployeeResult, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

// List returns evaluations filtered by status; an empty status lists all.
func (s *Service) List(ctx context.Context, status Status) ([]Evaluation, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Gateway.ListEvaluations(ctx, status)
}

func (s *Service) Approve(ctx context.Context, evaluationID string) (TransitionResult, error) {
	return s.Gateway.TransitionEvaluation(ctx, evaluationID, Transition{Status: StatusApproved})
}

func (s *Service) Review(ctx context.Context, evaluationID, comments string) (TransitionResult, error) {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return TransitionResult{}, ErrCommentsNeeded
	}
	return s.Gateway.TransitionEvaluation(ctx, evaluationID, Transition{Status: StatusReview, Comments: comments})
}

func (s *Service) Reject(ctx context.Context, evaluationID, reason string) (TransitionResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return TransitionResult{}, ErrReasonNeeded
	}
	return s.Gateway.TransitionEvaluation(ctx, evaluationID, Transition{Status: StatusRejected, Reason: reason})
}

// Guard returns ErrNotActionable for evaluations that no longer accept actions.
func Guard(e Evaluation) error {
	if !e.Actionable() {
		return fmt.Errorf("%w: %s", ErrNotActionable, e.Status)
	}
	return nil
}

func (s *Service) Evaluate(ctx context.Context, employeeID string) (EmployeeResult, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return EmployeeResult{}, ErrNoEmployee
	}
	return s.Gateway.EvaluateEmployee(ctx, employeeID)
}
