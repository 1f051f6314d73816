package project

import "context"

type Gateway interface {
	ListProjects(ctx context.Context) ([]Project, error)
	CreateProject(ctx context.Context, payload NewProject) (Project, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

func (s *Service) Summaries(ctx context.Context) ([]Summary, error) {
	projects, err := s.Gateway.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return ToSummaries(projects), nil
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.Gateway.ListProjects(ctx)
}

func (s *Service) Register(ctx context.Context, payload NewProject) (Project, error) {
	return s.Gateway.CreateProject(ctx, payload.Clean())
}
