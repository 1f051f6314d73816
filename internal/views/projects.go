package views

import (
	"context"
	"sync"

	"matchmind/internal/domain/project"
	"matchmind/internal/forms"
)

type ProjectsState struct {
	Projects []project.Summary `json:"projects"`
	Query    string            `json:"query"`
	Filtered []project.Summary `json:"filtered"`
	Loading  bool              `json:"loading"`
	Err      string            `json:"error,omitempty"`
}

type Projects struct {
	svc      *project.Service
	calls    inflight
	Register *forms.Modal[project.NewProject]

	mu    sync.Mutex
	state ProjectsState
}

func NewProjects(svc *project.Service) *Projects {
	v := &Projects{svc: svc}
	v.Register = forms.NewProjectModal(v.register)
	return v
}

func (v *Projects) State() ProjectsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Projects) Load(ctx context.Context) error {
	if err := v.calls.begin("load"); err != nil {
		return err
	}
	defer v.calls.end("load")

	v.mu.Lock()
	v.state.Loading = true
	v.mu.Unlock()

	summaries, err := v.svc.Summaries(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = false
	v.state.Err = errText(err)
	if err != nil {
		return err
	}
	v.state.Projects = summaries
	v.state.Filtered = project.FilterSummaries(summaries, v.state.Query)
	return nil
}

func (v *Projects) Search(query string) []project.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Query = query
	v.state.Filtered = project.FilterSummaries(v.state.Projects, query)
	return v.state.Filtered
}

func (v *Projects) register(ctx context.Context, payload project.NewProject) error {
	if _, err := v.svc.Register(ctx, payload); err != nil {
		return err
	}
	_ = v.Load(ctx)
	return nil
}
