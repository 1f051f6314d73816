package backend

import (
	"context"
	"net/http"

	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/dashboard"
	"matchmind/internal/domain/recommendation"
)

func (c *Client) DashboardMetrics(ctx context.Context) (dashboard.Metrics, error) {
	var out dashboard.Metrics
	err := c.doJSON(ctx, call{method: http.MethodGet, path: PathDashboardMetrics}, &out)
	return out, err
}

func (c *Client) Recommendations(ctx context.Context, req recommendation.Request) (recommendation.Result, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: PathRecommendations, body: req})
	if err != nil {
		return recommendation.Result{}, err
	}
	return recommendation.ParseResult(body), nil
}

func (c *Client) AssignProject(ctx context.Context, projectID, employeeID string) (recommendation.Assignment, error) {
	var out recommendation.Assignment
	err := c.doJSON(ctx, call{
		method:   http.MethodPost,
		path:     PathProjectAssign(projectID),
		endpoint: "/projects/{id}/assign",
		body:     recommendation.AssignRequest{EmployeeID: employeeID},
		errorKey: []string{"error", "message"},
	}, &out)
	return out, err
}

func (c *Client) DomainAnalysis(ctx context.Context, req analysis.Request) (analysis.DomainResult, error) {
	var out analysis.DomainResult
	err := c.doJSON(ctx, call{method: http.MethodPost, path: PathDomainAnalysis, body: req}, &out)
	return out, err
}

func (c *Client) QuantitativeAnalysis(ctx context.Context, req analysis.UserRequest) (analysis.Quantitative, error) {
	var out analysis.Quantitative
	err := c.doJSON(ctx, call{method: http.MethodPost, path: PathQuantitativeAnalysis, body: req}, &out)
	return out, err
}

func (c *Client) QualitativeAnalysis(ctx context.Context, req analysis.UserRequest) (analysis.Qualitative, error) {
	var out analysis.Qualitative
	err := c.doJSON(ctx, call{method: http.MethodPost, path: PathQualitativeAnalysis, body: req}, &out)
	return out, err
}
