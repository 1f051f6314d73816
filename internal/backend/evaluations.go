package backend

import (
	"context"
	"fmt"
	"net/http"

	"matchmind/internal/domain/evaluation"
)

func (c *Client) ListEvaluations(ctx context.Context, status evaluation.Status) ([]evaluation.Evaluation, error) {
	in := call{method: http.MethodGet, path: PathEvaluations}
	if status != "" {
		in.query = map[string]string{"status": string(status)}
	}
	body, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	return decodeList[evaluation.Evaluation](c.log, in, body, "evaluations"), nil
}

func (c *Client) ApproveEvaluation(ctx context.Context, evaluationID string) (evaluation.TransitionResult, error) {
	return c.transition(ctx, evaluationID, "approve", evaluation.Transition{Status: evaluation.StatusApproved})
}

func (c *Client) ReviewEvaluation(ctx context.Context, evaluationID, comments string) (evaluation.TransitionResult, error) {
	return c.transition(ctx, evaluationID, "review", evaluation.Transition{Status: evaluation.StatusReview, Comments: comments})
}

func (c *Client) RejectEvaluation(ctx context.Context, evaluationID, reason string) (evaluation.TransitionResult, error) {
	return c.transition(ctx, evaluationID, "reject", evaluation.Transition{Status: evaluation.StatusRejected, Reason: reason})
}

// TransitionEvaluation routes t to the action endpoint matching its target status.
func (c *Client) TransitionEvaluation(ctx context.Context, evaluationID string, t evaluation.Transition) (evaluation.TransitionResult, error) {
	switch t.Status {
	case evaluation.StatusApproved:
		return c.ApproveEvaluation(ctx, evaluationID)
	case evaluation.StatusReview:
		return c.ReviewEvaluation(ctx, evaluationID, t.Comments)
	case evaluation.StatusRejected:
		return c.RejectEvaluation(ctx, evaluationID, t.Reason)
	default:
		return evaluation.TransitionResult{}, fmt.Errorf("%w: %q", evaluation.ErrInvalidStatus, t.Status)
	}
}

func (c *Client) transition(ctx context.Context, evaluationID, action string, t evaluation.Transition) (evaluation.TransitionResult, error) {
	var out evaluation.TransitionResult
	err := c.doJSON(ctx, call{
		method:   http.MethodPut,
		path:     PathEvaluationAction(evaluationID, action),
		endpoint: "/evaluations/{id}/" + action,
		body:     t,
	}, &out)
	return out, err
}

func (c *Client) EvaluateEmployee(ctx context.Context, employeeID string) (evaluation.EmployeeResult, error) {
	var out evaluation.EmployeeResult
	err := c.doJSON(ctx, call{
		method: http.MethodPost,
		path:   PathEmployeeEvaluation,
		body:   map[string]string{"employee_id": employeeID},
	}, &out)
	return out, err
}
