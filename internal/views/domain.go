package views

import (
	"context"
	"sync"
	"time"

	"matchmind/internal/domain/analysis"
	"matchmind/internal/platform/jobs"
)

type DomainState struct {
	Result           *analysis.DomainResult `json:"result,omitempty"`
	Portfolio        analysis.Portfolio     `json:"portfolio"`
	Analyzing        bool                   `json:"analyzing"`
	LoadingPortfolio bool                   `json:"loadingPortfolio"`
	Err              string                 `json:"error,omitempty"`
	PortfolioErr     string                 `json:"portfolioError,omitempty"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

type DomainAnalysis struct {
	svc   *analysis.Service
	calls inflight

	mu    sync.Mutex
	state DomainState
}

func NewDomainAnalysis(svc *analysis.Service) *DomainAnalysis {
	return &DomainAnalysis{svc: svc}
}

func (v *DomainAnalysis) State() DomainState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *DomainAnalysis) Analyze(ctx context.Context) (analysis.DomainResult, error) {
	if err := v.calls.begin("analyze"); err != nil {
		return analysis.DomainResult{}, err
	}
	defer v.calls.end("analyze")

	v.mu.Lock()
	v.state.Analyzing = true
	v.state.Err = ""
	v.mu.Unlock()

	result, err := v.svc.Analyze(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Analyzing = false
	v.state.Err = errText(err)
	if err != nil {
		return analysis.DomainResult{}, err
	}
	v.state.Result = &result
	return result, nil
}

func (v *DomainAnalysis) LoadPortfolio(ctx context.Context) error {
	if err := v.calls.begin("portfolio"); err != nil {
		return err
	}
	defer v.calls.end("portfolio")
	return v.RefreshPortfolio(ctx)
}

// RefreshPortfolio reloads the portfolio regardless of other in-flight loads.
func (v *DomainAnalysis) RefreshPortfolio(ctx context.Context) error {
	v.mu.Lock()
	v.state.LoadingPortfolio = true
	v.mu.Unlock()

	portfolio, err := v.svc.Portfolio(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LoadingPortfolio = false
	v.state.PortfolioErr = errText(err)
	if err != nil {
		return err
	}
	v.state.Portfolio = portfolio
	v.state.UpdatedAt = time.Now()
	return nil
}

func (v *DomainAnalysis) AutoRefresh(ctx context.Context, s *jobs.Scheduler, interval time.Duration, onUpdate func(DomainState)) {
	s.Every(ctx, "domain.portfolio.refresh", interval, func(ctx context.Context) error {
		if err := v.RefreshPortfolio(ctx); err != nil {
			return err
		}
		if onUpdate != nil {
			onUpdate(v.State())
		}
		return nil
	})
}
