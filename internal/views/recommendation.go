package views

import (
	"context"
	"sync"

	"matchmind/internal/domain/project"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/forms"
)

type RecommendationState struct {
	Projects        []project.Project               `json:"projects"`
	SelectedProject string                          `json:"selectedProject"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
	LoadingProjects bool                            `json:"loadingProjects"`
	Analyzing       bool                            `json:"analyzing"`
	LastAssignment  string                          `json:"lastAssignment,omitempty"`
	Err             string                          `json:"error,omitempty"`
}

type Recommendation struct {
	projects *project.Service
	svc      *recommendation.Service
	calls    inflight

	mu    sync.Mutex
	state RecommendationState
}

func NewRecommendation(projects *project.Service, svc *recommendation.Service) *Recommendation {
	return &Recommendation{projects: projects, svc: svc}
}

func (v *Recommendation) State() RecommendationState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// LoadProjects fills the project picker and preselects the first project.
func (v *Recommendation) LoadProjects(ctx context.Context) error {
	if err := v.calls.begin("projects"); err != nil {
		return err
	}
	defer v.calls.end("projects")

	v.mu.Lock()
	v.state.LoadingProjects = true
	v.mu.Unlock()

	list, err := v.projects.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LoadingProjects = false
	v.state.Err = errText(err)
	if err != nil {
		return err
	}
	v.state.Projects = list
	if v.state.SelectedProject == "" && len(list) > 0 {
		v.state.SelectedProject = list[0].ProjectID
	}
	return nil
}

func (v *Recommendation) Select(projectID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SelectedProject = projectID
}

func (v *Recommendation) Analyze(ctx context.Context) ([]recommendation.Recommendation, error) {
	if err := v.calls.begin("analyze"); err != nil {
		return nil, err
	}
	defer v.calls.end("analyze")

	v.mu.Lock()
	projectID := v.state.SelectedProject
	v.state.Analyzing = true
	v.state.Err = ""
	v.mu.Unlock()

	result, err := v.svc.Recommend(ctx, projectID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Analyzing = false
	v.state.Err = errText(err)
	if err != nil {
		return nil, err
	}
	v.state.Recommendations = result.Recommendations
	return result.Recommendations, nil
}

// AssignModal opens a confirmation for placing rec on the selected project.
func (v *Recommendation) AssignModal(rec recommendation.Recommendation) *forms.Modal[forms.Assignment] {
	v.mu.Lock()
	projectID := v.state.SelectedProject
	v.mu.Unlock()
	m := forms.NewAssignmentModal(forms.Assignment{
		ProjectID:    projectID,
		EmployeeID:   rec.UserID,
		EmployeeName: rec.Name,
		Availability: rec.Availability,
	}, v.assign)
	m.Open()
	return m
}

func (v *Recommendation) assign(ctx context.Context, a forms.Assignment) error {
	if err := v.calls.begin("assign"); err != nil {
		return err
	}
	defer v.calls.end("assign")

	res, err := v.svc.Assign(ctx, a.ProjectID, a.EmployeeID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LastAssignment = res.Message
	return nil
}
