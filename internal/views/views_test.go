package views

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/dashboard"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/domain/resume"
	"matchmind/internal/forms"
	"matchmind/internal/platform/jobs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeBackend struct {
	mu          sync.Mutex
	block       chan struct{}
	metricCalls atomic.Int32
	listCalls   atomic.Int32
	employees   []personnel.Employee
	projects    []project.Project
	assigned    []string
	evaluations []evaluation.Evaluation
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		employees: []personnel.Employee{
			{UserID: "u1", BasicInfo: personnel.BasicInfo{Name: "Kim Minsu", Role: "Backend Engineer"}, Skills: []personnel.Skill{{Name: "Go"}},
				DomainExperience: &personnel.DomainExperience{KnowledgeDomains: []personnel.KnowledgeDomain{{Domain: "Finance"}}}},
			{UserID: "u2", BasicInfo: personnel.BasicInfo{Name: "Lee Jiyoung", Role: "Frontend Engineer"}, Skills: []personnel.Skill{{Name: "React"}}},
			{UserID: "u3", BasicInfo: personnel.BasicInfo{Name: "Park Hana", Role: "Data Engineer"}, Skills: []personnel.Skill{{Name: "Python"}}},
		},
		projects: []project.Project{
			{ProjectID: "p1", ProjectName: "Payments", KnowledgeDomain: "Finance", Status: "active"},
			{ProjectID: "p2", ProjectName: "Clinic", KnowledgeDomain: "Healthcare"},
		},
		evaluations: []evaluation.Evaluation{{EvaluationID: "e1", Status: evaluation.StatusPending}},
	}
}

func (f *fakeBackend) wait(ctx context.Context) {
	if f.block == nil {
		return
	}
	select {
	case <-f.block:
	case <-ctx.Done():
	}
}

func (f *fakeBackend) DashboardMetrics(ctx context.Context) (dashboard.Metrics, error) {
	f.metricCalls.Add(1)
	f.wait(ctx)
	return dashboard.Metrics{TotalEmployees: 3, AvailableEmployees: 1}, nil
}

func (f *fakeBackend) ListEmployees(ctx context.Context) ([]personnel.Employee, error) {
	f.listCalls.Add(1)
	return f.employees, nil
}

func (f *fakeBackend) CreateEmployee(_ context.Context, n personnel.NewEmployee) (personnel.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := personnel.Employee{UserID: "u4", BasicInfo: personnel.BasicInfo{Name: n.Name}}
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeBackend) ListProjects(context.Context) ([]project.Project, error) {
	return f.projects, nil
}

func (f *fakeBackend) CreateProject(_ context.Context, n project.NewProject) (project.Project, error) {
	return project.Project{ProjectID: "p9", ProjectName: n.ProjectName}, nil
}

func (f *fakeBackend) Recommendations(ctx context.Context, req recommendation.Request) (recommendation.Result, error) {
	f.wait(ctx)
	return recommendation.Result{ProjectID: req.ProjectID, Recommendations: []recommendation.Recommendation{
		{UserID: "u1", Name: "Kim Minsu", Availability: "available"},
		{UserID: "u2", Name: "Lee Jiyoung", Availability: "busy"},
	}}, nil
}

func (f *fakeBackend) AssignProject(_ context.Context, projectID, employeeID string) (recommendation.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assigned = append(f.assigned, projectID+"/"+employeeID)
	return recommendation.Assignment{Message: "assigned"}, nil
}

func (f *fakeBackend) DomainAnalysis(context.Context, analysis.Request) (analysis.DomainResult, error) {
	return analysis.DomainResult{CurrentDomains: []string{"Finance"}}, nil
}

func (f *fakeBackend) QuantitativeAnalysis(_ context.Context, req analysis.UserRequest) (analysis.Quantitative, error) {
	return analysis.Quantitative{UserID: req.UserID}, nil
}

func (f *fakeBackend) QualitativeAnalysis(_ context.Context, req analysis.UserRequest) (analysis.Qualitative, error) {
	return analysis.Qualitative{UserID: req.UserID}, nil
}

func (f *fakeBackend) ListEvaluations(context.Context, evaluation.Status) ([]evaluation.Evaluation, error) {
	return append([]evaluation.Evaluation(nil), f.evaluations...), nil
}

func (f *fakeBackend) TransitionEvaluation(_ context.Context, id string, t evaluation.Transition) (evaluation.TransitionResult, error) {
	return evaluation.TransitionResult{Evaluation: evaluation.Evaluation{EvaluationID: id, Status: t.Status, RejectionReason: t.Reason}}, nil
}

func (f *fakeBackend) EvaluateEmployee(_ context.Context, id string) (evaluation.EmployeeResult, error) {
	return evaluation.EmployeeResult{EmployeeID: id, OverallScore: 80}, nil
}

func (f *fakeBackend) RequestUploadURL(_ context.Context, name, _ string) (resume.Target, error) {
	return resume.Target{UploadURL: "https://bucket/" + name, FileKey: "k/" + name}, nil
}

func (f *fakeBackend) UploadFile(context.Context, resume.Target, string, []byte) error {
	return nil
}

func TestDashboardLoadRefusesSecondCall(t *testing.T) {
	fb := newFakeBackend()
	fb.block = make(chan struct{})
	view := NewDashboard(dashboard.NewService(fb))

	done := make(chan error, 1)
	go func() { done <- view.Load(context.Background()) }()
	require.Eventually(t, func() bool { return fb.metricCalls.Load() == 1 }, time.Second, time.Millisecond)

	assert.ErrorIs(t, view.Load(context.Background()), ErrBusy)
	assert.True(t, view.State().Loading)

	close(fb.block)
	require.NoError(t, <-done)
	state := view.State()
	assert.True(t, state.Loaded)
	assert.Equal(t, 3, state.Metrics.TotalEmployees)
	assert.False(t, state.Loading)
}

func TestDashboardAutoRefreshOverlapsLoad(t *testing.T) {
	fb := newFakeBackend()
	fb.block = make(chan struct{})
	view := NewDashboard(dashboard.NewService(fb))
	ctx, cancel := context.WithCancel(context.Background())
	scheduler := jobs.New(nil)

	done := make(chan error, 1)
	go func() { done <- view.Load(ctx) }()
	view.AutoRefresh(ctx, scheduler, 2*time.Millisecond, nil)

	assert.Eventually(t, func() bool { return fb.metricCalls.Load() >= 3 }, time.Second, time.Millisecond)
	close(fb.block)
	require.NoError(t, <-done)
	cancel()
	scheduler.Wait()
}

func TestPersonnelSearchSingleMatch(t *testing.T) {
	fb := newFakeBackend()
	view := NewPersonnel(personnel.NewService(fb))
	require.NoError(t, view.Load(context.Background()))

	got := view.Search("jiYOUNG")
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
	assert.Equal(t, int32(1), fb.listCalls.Load())
}

func TestPersonnelRegisterReloads(t *testing.T) {
	fb := newFakeBackend()
	view := NewPersonnel(personnel.NewService(fb))
	view.Register.Open()
	view.Register.Set(personnel.NewEmployee{
		Name: "Choi", Email: "choi@example.com", Role: "QA", Department: "Quality",
		Skills: []personnel.Skill{{Name: "Selenium"}},
	})
	require.NoError(t, view.Register.Submit(context.Background()))
	assert.False(t, view.Register.IsOpen())
	assert.Len(t, view.State().Members, 4)
}

func TestProjectsLoadAndSearch(t *testing.T) {
	view := NewProjects(project.NewService(newFakeBackend()))
	require.NoError(t, view.Load(context.Background()))
	state := view.State()
	require.Len(t, state.Projects, 2)
	assert.Equal(t, project.StatusInProgress, state.Projects[0].Status)
	assert.Len(t, view.Search("clinic"), 1)
}

func TestRecommendationFlow(t *testing.T) {
	fb := newFakeBackend()
	view := NewRecommendation(project.NewService(fb), recommendation.NewService(fb))
	require.NoError(t, view.LoadProjects(context.Background()))
	assert.Equal(t, "p1", view.State().SelectedProject)

	recs, err := view.Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)

	busy := view.AssignModal(recs[1])
	var verr *forms.ValidationError
	require.ErrorAs(t, busy.Submit(context.Background()), &verr)

	modal := view.AssignModal(recs[0])
	require.NoError(t, modal.Submit(context.Background()))
	assert.False(t, modal.IsOpen())
	assert.Equal(t, []string{"p1/u1"}, fb.assigned)
	assert.Equal(t, "assigned", view.State().LastAssignment)
}

func TestRecommendationAnalyzeRequiresProject(t *testing.T) {
	fb := newFakeBackend()
	view := NewRecommendation(project.NewService(fb), recommendation.NewService(fb))
	_, err := view.Analyze(context.Background())
	assert.ErrorIs(t, err, recommendation.ErrNoProject)
	assert.NotEmpty(t, view.State().Err)
}

func TestDomainAnalysisPortfolio(t *testing.T) {
	view := NewDomainAnalysis(analysis.NewService(newFakeBackend()))
	require.NoError(t, view.LoadPortfolio(context.Background()))
	state := view.State()
	require.Len(t, state.Portfolio.Entries, 2)
	assert.Equal(t, 1, state.Portfolio.Entries[0].ExpertCount)

	result, err := view.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance"}, result.CurrentDomains)
	assert.NotNil(t, view.State().Result)
}

func TestEvaluationSearchRejectsEmptyQuery(t *testing.T) {
	fb := newFakeBackend()
	view := NewEvaluation(personnel.NewService(fb), evaluation.NewService(fb), fb, 0)
	_, err := view.SearchEmployees(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, fb.listCalls.Load())
	assert.NotEmpty(t, view.State().Err)

	found, err := view.SearchEmployees(context.Background(), "park")
	require.NoError(t, err)
	require.Len(t, found, 1)

	result, err := view.Evaluate(context.Background(), found[0])
	require.NoError(t, err)
	assert.Equal(t, "u3", result.EmployeeID)
}

func TestEvaluationActionsUpdateList(t *testing.T) {
	fb := newFakeBackend()
	view := NewEvaluation(personnel.NewService(fb), evaluation.NewService(fb), fb, 0)
	_, err := view.LoadEvaluations(context.Background(), evaluation.StatusPending)
	require.NoError(t, err)

	reject := view.RejectModal("e1")
	reject.Set(forms.Reject{EvaluationID: "e1", Reason: "incomplete"})
	require.NoError(t, reject.Submit(context.Background()))

	list := view.State().Evaluations
	require.Len(t, list, 1)
	assert.Equal(t, evaluation.StatusRejected, list[0].Status)
	assert.Equal(t, "incomplete", list[0].RejectionReason)
}

func TestEvaluationActionLeavesHandedOutListUntouched(t *testing.T) {
	fb := newFakeBackend()
	view := NewEvaluation(personnel.NewService(fb), evaluation.NewService(fb), fb, 0)
	loaded, err := view.LoadEvaluations(context.Background(), "")
	require.NoError(t, err)
	snapshot := view.State().Evaluations

	_, err = view.Approve(context.Background(), "e1")
	require.NoError(t, err)

	assert.Equal(t, evaluation.StatusPending, loaded[0].Status)
	assert.Equal(t, evaluation.StatusPending, snapshot[0].Status)
	assert.Equal(t, evaluation.StatusApproved, view.State().Evaluations[0].Status)
}

func TestEvaluationClosedItemsRefuseActions(t *testing.T) {
	fb := newFakeBackend()
	fb.evaluations = []evaluation.Evaluation{{EvaluationID: "e2", Status: evaluation.StatusApproved}}
	view := NewEvaluation(personnel.NewService(fb), evaluation.NewService(fb), fb, 0)
	_, err := view.LoadEvaluations(context.Background(), "")
	require.NoError(t, err)

	_, err = view.Approve(context.Background(), "e2")
	assert.ErrorIs(t, err, evaluation.ErrNotActionable)
}

func TestDomainAutoRefreshReportsState(t *testing.T) {
	view := NewDomainAnalysis(analysis.NewService(newFakeBackend()))
	ctx, cancel := context.WithCancel(context.Background())
	scheduler := jobs.New(nil)

	updates := make(chan DomainState, 8)
	view.AutoRefresh(ctx, scheduler, time.Millisecond, func(s DomainState) {
		select {
		case updates <- s:
		default:
		}
	})

	select {
	case state := <-updates:
		assert.Equal(t, 2, state.Portfolio.Totals.Domains)
	case <-time.After(time.Second):
		t.Fatal("expected a portfolio refresh")
	}
	cancel()
	scheduler.Wait()
}
