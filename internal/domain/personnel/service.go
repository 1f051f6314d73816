package personnel

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyQuery = errors.New("search query is required")

type Gateway interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, payload NewEmployee) (Employee, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

func (s *Service) Members(ctx context.Context) ([]Member, error) {
	employees, err := s.Gateway.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return ToMembers(employees), nil
}

func (s *Service) Register(ctx context.Context, payload NewEmployee) (Employee, error) {
	return s.Gateway.CreateEmployee(ctx, payload.Clean())
}

// SearchByName fetches the full list and filters it locally by name.
func (s *Service) SearchByName(ctx context.Context, query string) ([]Employee, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	employees, err := s.Gateway.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByName(employees, query), nil
}
