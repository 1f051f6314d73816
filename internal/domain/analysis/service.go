package analysis

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

var ErrNoUser = errors.New("user id is required")

type Gateway interface {
	DomainAnalysis(ctx context.Context, req Request) (DomainResult, error)
	QuantitativeAnalysis(ctx context.Context, req UserRequest) (Quantitative, error)
	QualitativeAnalysis(ctx context.Context, req UserRequest) (Qualitative, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListEmployees(ctx context.Context) ([]personnel.Employee, error)
}

type Service struct {
	Gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{Gateway: gateway}
}

func (s *Service) Analyze(ctx context.Context) (DomainResult, error) {
	return s.Gateway.DomainAnalysis(ctx, Request{AnalysisType: AnalysisNewDomains})
}

// Portfolio fetches projects and employees concurrently and aggregates them.
func (s *Service) Portfolio(ctx context.Context) (Portfolio, error) {
	var (
		projects  []project.Project
		employees []personnel.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.Gateway.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.Gateway.ListEmployees(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Portfolio{}, err
	}
	return BuildPortfolio(projects, employees), nil
}

func (s *Service) Quantitative(ctx context.Context, userID string) (Quantitative, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Quantitative{}, ErrNoUser
	}
	return s.Gateway.QuantitativeAnalysis(ctx, UserRequest{UserID: userID})
}

func (s *Service) Qualitative(ctx context.Context, userID string) (Qualitative, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Qualitative{}, ErrNoUser
	}
	return s.Gateway.QualitativeAnalysis(ctx, UserRequest{UserID: userID})
}
