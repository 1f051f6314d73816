package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

func expert(id string, domains ...string) personnel.Employee {
	kds := make([]personnel.KnowledgeDomain, 0, len(domains))
	for _, d := range domains {
		kds = append(kds, personnel.KnowledgeDomain{Domain: d})
	}
	return personnel.Employee{UserID: id, DomainExperience: &personnel.DomainExperience{KnowledgeDomains: kds}}
}

func TestBuildPortfolio(t *testing.T) {
	projects := []project.Project{
		{ProjectID: "p1", KnowledgeDomain: "Finance", TechDomains: []string{"Backend", "Cloud"}},
		{ProjectID: "p2", KnowledgeDomain: "Healthcare", TechDomains: []string{"Data"}},
		{ProjectID: "p3", KnowledgeDomain: "Finance", TechDomains: []string{"Cloud", "Security"}},
		{ProjectID: "p4"},
	}
	employees := []personnel.Employee{
		expert("u1", "Finance"),
		expert("u2", "Finance", "Healthcare"),
		expert("u3", "Retail", "General"),
		{UserID: "u4"},
	}

	got := BuildPortfolio(projects, employees)
	require.Len(t, got.Entries, 2)

	finance := got.Entries[0]
	assert.Equal(t, "Finance", finance.DomainName)
	assert.Equal(t, 2, finance.ProjectCount)
	assert.Equal(t, 2, finance.ExpertCount)
	assert.Equal(t, DefaultMaturity, finance.MaturityLevel)
	assert.Equal(t, []string{"Backend", "Cloud", "Security"}, finance.TechDomains)

	health := got.Entries[1]
	assert.Equal(t, "Healthcare", health.DomainName)
	assert.Equal(t, 1, health.ExpertCount)

	assert.Equal(t, PortfolioTotals{Domains: 2, Projects: 3, Experts: 3, AvgProjectsPerArea: 2}, got.Totals)
}

func TestBuildPortfolioEmpty(t *testing.T) {
	got := BuildPortfolio(nil, nil)
	assert.NotNil(t, got.Entries)
	assert.Zero(t, got.Totals)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandHigh, BandFor(70))
	assert.Equal(t, BandMedium, BandFor(40))
	assert.Equal(t, BandLow, BandFor(39.5))
	assert.Equal(t, BandHigh, Domain{FeasibilityScore: 91}.Band())
}

type fakeGateway struct {
	projectsErr error
	request     Request
	users       []string
}

func (f *fakeGateway) DomainAnalysis(_ context.Context, req Request) (DomainResult, error) {
	f.request = req
	return DomainResult{CurrentDomains: []string{"Finance"}}, nil
}

func (f *fakeGateway) QuantitativeAnalysis(_ context.Context, req UserRequest) (Quantitative, error) {
	f.users = append(f.users, req.UserID)
	return Quantitative{UserID: req.UserID}, nil
}

func (f *fakeGateway) QualitativeAnalysis(_ context.Context, req UserRequest) (Qualitative, error) {
	f.users = append(f.users, req.UserID)
	return Qualitative{UserID: req.UserID}, nil
}

func (f *fakeGateway) ListProjects(context.Context) ([]project.Project, error) {
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	return []project.Project{{ProjectID: "p1", KnowledgeDomain: "Finance"}}, nil
}

func (f *fakeGateway) ListEmployees(context.Context) ([]personnel.Employee, error) {
	return []personnel.Employee{expert("u1", "Finance")}, nil
}

func TestServiceAnalyzeRequestsNewDomains(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewService(gw).Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AnalysisNewDomains, gw.request.AnalysisType)
}

func TestServicePortfolio(t *testing.T) {
	got, err := NewService(&fakeGateway{}).Portfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, 1, got.Entries[0].ExpertCount)

	_, err = NewService(&fakeGateway{projectsErr: errors.New("down")}).Portfolio(context.Background())
	assert.EqualError(t, err, "down")
}

func TestServiceUserAnalysesRequireID(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)
	_, err := svc.Quantitative(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoUser)
	_, err = svc.Qualitative(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNoUser)

	_, err = svc.Quantitative(context.Background(), "u1")
	require.NoError(t, err)
	_, err = svc.Qualitative(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, gw.users)
}
