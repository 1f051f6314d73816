package recommendation

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNoProject  = errors.New("project is required")
	ErrNoEmployee = errors.New("employee is required")
)

type Gateway interface {
	Recommendations(ctx context.Context, req Request) (Result, error)
	AssignProject(ctx context.Context, projectID, employeeID string) (Assignment, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

func (s *Service) Recommend(ctx context.Context, projectID string) (Result, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Result{}, ErrNoProject
	}
	return s.Gateway.Recommendations(ctx, Request{ProjectID: projectID})
}

func (s *Service) Assign(ctx context.Context, projectID, employeeID string) (Assignment, error) {
	if strings.TrimSpace(projectID) == "" {
		return Assignment{}, ErrNoProject
	}
	if strings.TrimSpace(employeeID) == "" {
		return Assignment{}, ErrNoEmployee
	}
	return s.Gateway.AssignProject(ctx, projectID, employeeID)
}
