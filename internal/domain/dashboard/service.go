package dashboard

import "context"

type Gateway interface {
	DashboardMetrics(ctx context.Context) (Metrics, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	m, err := s.Gateway.DashboardMetrics(ctx)
	if err != nil {
		return Metrics{}, err
	}
	if m.RecentRecommendations == nil {
		m.RecentRecommendations = []RecentRecommendation{}
	}
	if m.TopSkills == nil {
		m.TopSkills = []TopSkill{}
	}
	return m, nil
}
