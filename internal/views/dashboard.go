package views

import (
	"context"
	"sync"
	"time"

	"matchmind/internal/domain/dashboard"
	"matchmind/internal/platform/jobs"
)

type DashboardState struct {
	Metrics   dashboard.Metrics `json:"metrics"`
	Loaded    bool              `json:"loaded"`
	Loading   bool              `json:"loading"`
	Err       string            `json:"error,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type Dashboard struct {
	svc   *dashboard.Service
	calls inflight

	mu    sync.Mutex
	state DashboardState
}

func NewDashboard(svc *dashboard.Service) *Dashboard {
	return &Dashboard{svc: svc}
}

func (v *Dashboard) State() DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load fetches metrics on mount or explicit refresh.
func (v *Dashboard) Load(ctx context.Context) error {
	if err := v.calls.begin("load"); err != nil {
		return err
	}
	defer v.calls.end("load")
	return v.fetch(ctx)
}

// Refresh is the auto-refresh entry point and ignores in-flight loads.
func (v *Dashboard) Refresh(ctx context.Context) error {
	return v.fetch(ctx)
}

// AutoRefresh schedules Refresh every interval. onUpdate, if set, receives
// the state after each successful refresh.
func (v *Dashboard) AutoRefresh(ctx context.Context, s *jobs.Scheduler, interval time.Duration, onUpdate func(DashboardState)) {
	s.Every(ctx, "dashboard.refresh", interval, func(ctx context.Context) error {
		if err := v.Refresh(ctx); err != nil {
			return err
		}
		if onUpdate != nil {
			onUpdate(v.State())
		}
		return nil
	})
}

func (v *Dashboard) fetch(ctx context.Context) error {
	v.mu.Lock()
	v.state.Loading = true
	v.mu.Unlock()

	metrics, err := v.svc.Metrics(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = false
	v.state.Err = errText(err)
	if err != nil {
		return err
	}
	v.state.Metrics = metrics
	v.state.Loaded = true
	v.state.UpdatedAt = time.Now()
	return nil
}
