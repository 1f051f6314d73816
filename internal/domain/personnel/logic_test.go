package personnel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMembers() []Member {
	return []Member{
		{ID: "u1", Name: "Kim Minsu", Position: "Backend Engineer", Skills: []string{"Go", "AWS"}},
		{ID: "u2", Name: "Lee Jiyoung", Position: "Frontend Engineer", Skills: []string{"React"}},
		{ID: "u3", Name: "Park Hana", Position: "Data Engineer", Skills: []string{"Python"}},
	}
}

func TestFilterMembersMatchesSingleName(t *testing.T) {
	got := FilterMembers(sampleMembers(), "JIYOUNG")
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
}

func TestFilterMembersMatchesPositionAndSkills(t *testing.T) {
	assert.Len(t, FilterMembers(sampleMembers(), "engineer"), 3)
	got := FilterMembers(sampleMembers(), "pyth")
	require.Len(t, got, 1)
	assert.Equal(t, "u3", got[0].ID)
}

func TestFilterMembersEmptyQueryKeepsAll(t *testing.T) {
	assert.Len(t, FilterMembers(sampleMembers(), ""), 3)
}

func TestFilterByNameUsesAliases(t *testing.T) {
	employees := []Employee{
		{UserID: "a", BasicInfo: BasicInfo{Name: "Choi Yuna"}},
		{EmployeeID: "b", EmployeeName: "Jung Hoseok"},
		{ID: "c", Name: "Yoon Jisoo"},
	}
	got := FilterByName(employees, "hoseok")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Identifier())
}

func TestToMemberDefaults(t *testing.T) {
	m := ToMember(Employee{
		UserID:    "u9",
		BasicInfo: BasicInfo{Name: "Han", Role: "Architect", YearsOfExperience: 12},
		Skills:    []Skill{{Name: "Kubernetes"}, {Name: "Terraform"}},
	})
	assert.Equal(t, DefaultDepartment, m.Department)
	assert.Equal(t, AvailabilityAvailable, m.Availability)
	assert.Nil(t, m.CurrentProject)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, m.Skills)
	assert.Equal(t, float64(12), m.Experience)
}

func TestCleanDropsBlankEntries(t *testing.T) {
	cleaned := NewEmployee{
		Skills:         []Skill{{Name: " Go "}, {Name: "  "}},
		Certifications: []string{"", "AWS SAA"},
	}.Clean()
	assert.Equal(t, []Skill{{Name: "Go"}}, cleaned.Skills)
	assert.Equal(t, []string{"AWS SAA"}, cleaned.Certifications)
}

type fakeGateway struct {
	employees []Employee
	err       error
	created   NewEmployee
	calls     int
}

func (f *fakeGateway) ListEmployees(context.Context) ([]Employee, error) {
	f.calls++
	return f.employees, f.err
}

func (f *fakeGateway) CreateEmployee(_ context.Context, payload NewEmployee) (Employee, error) {
	f.created = payload
	return Employee{UserID: "new", BasicInfo: BasicInfo{Name: payload.Name}}, f.err
}

func TestSearchByNameRejectsEmptyQuery(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewService(gw).SearchByName(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, gw.calls)
}

func TestSearchByNamePropagatesGatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("boom")}
	_, err := NewService(gw).SearchByName(context.Background(), "kim")
	assert.EqualError(t, err, "boom")
}

func TestRegisterCleansPayload(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewService(gw).Register(context.Background(), NewEmployee{
		Name:   "Kim",
		Skills: []Skill{{Name: "Go"}, {Name: ""}},
	})
	require.NoError(t, err)
	assert.Len(t, gw.created.Skills, 1)
}
