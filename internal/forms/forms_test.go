package forms

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

func validEmployee() personnel.NewEmployee {
	return personnel.NewEmployee{
		Name:       "Kim Minsu",
		Email:      "minsu@example.com",
		Role:       "Backend Engineer",
		Department: "Development",
		Skills:     []personnel.Skill{{Name: "Go", Level: personnel.SkillAdvanced, Years: 4}},
	}
}

func validProject() project.NewProject {
	return project.NewProject{
		ProjectName:    "Payments",
		ClientIndustry: "Finance",
		RequiredSkills: []string{"Go"},
		DurationMonths: 6,
		TeamSize:       4,
		StartDate:      "2025-04-01",
	}
}

func TestEmployeeModalEmptyNameSkipsSubmit(t *testing.T) {
	calls := 0
	modal := NewEmployeeModal(func(context.Context, personnel.NewEmployee) error {
		calls++
		return nil
	})
	modal.Open()
	draft := validEmployee()
	draft.Name = "  "
	modal.Set(draft)

	err := modal.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name"))
	assert.Zero(t, calls)
	assert.True(t, modal.IsOpen())
	assert.Equal(t, err, modal.Err())
}

func TestEmployeeEmailFormat(t *testing.T) {
	draft := validEmployee()
	draft.Email = "foo"
	_, err := PrepareEmployee(draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Reason("email"))

	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("a b@c.d"))
	assert.False(t, ValidEmail("a@b"))
}

func TestEmployeeRulesAndCleaning(t *testing.T) {
	draft := validEmployee()
	draft.YearsOfExperience = -1
	draft.Skills = []personnel.Skill{{Name: " "}}
	draft.Department = ""
	_, err := PrepareEmployee(draft)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("years_of_experience"))
	assert.True(t, verr.Has("skills"))
	assert.True(t, verr.Has("department"))

	draft = validEmployee()
	draft.Skills = append(draft.Skills, personnel.Skill{Name: ""})
	draft.Certifications = []string{"", " CKA "}
	cleaned, err := PrepareEmployee(draft)
	require.NoError(t, err)
	assert.Len(t, cleaned.Skills, 1)
	assert.Equal(t, []string{"CKA"}, cleaned.Certifications)
}

func TestProjectSizeRulesBlockSubmit(t *testing.T) {
	for _, mutate := range []func(*project.NewProject){
		func(p *project.NewProject) { p.DurationMonths = 0 },
		func(p *project.NewProject) { p.TeamSize = -2 },
		func(p *project.NewProject) { p.RequiredSkills = nil },
		func(p *project.NewProject) { p.StartDate = "April" },
	} {
		calls := 0
		modal := NewProjectModal(func(context.Context, project.NewProject) error {
			calls++
			return nil
		})
		draft := validProject()
		mutate(&draft)
		modal.Set(draft)
		var verr *ValidationError
		require.ErrorAs(t, modal.Submit(context.Background()), &verr)
		assert.Zero(t, calls)
	}
}

func TestModalSuccessResetsAndCloses(t *testing.T) {
	var got project.NewProject
	modal := NewProjectModal(func(_ context.Context, p project.NewProject) error {
		got = p
		return nil
	})
	modal.Open()
	draft := validProject()
	draft.ProjectName = " Payments "
	modal.Set(draft)

	require.NoError(t, modal.Submit(context.Background()))
	assert.Equal(t, "Payments", got.ProjectName)
	assert.False(t, modal.IsOpen())
	assert.Equal(t, ProjectDraft(), modal.Value())
	assert.NoError(t, modal.Err())
}

func TestModalFailureKeepsDraft(t *testing.T) {
	modal := NewProjectModal(func(context.Context, project.NewProject) error {
		return errors.New("backend down")
	})
	modal.Open()
	modal.Set(validProject())

	err := modal.Submit(context.Background())
	assert.EqualError(t, err, "backend down")
	assert.True(t, modal.IsOpen())
	assert.Equal(t, "Payments", modal.Value().ProjectName)
	assert.EqualError(t, modal.Err(), "backend down")
	assert.False(t, modal.Submitting())
}

func TestModalRefusesConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	modal := NewProjectModal(func(context.Context, project.NewProject) error {
		close(entered)
		<-release
		return nil
	})
	modal.Set(validProject())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, modal.Submit(context.Background()))
	}()
	<-entered
	assert.ErrorIs(t, modal.Submit(context.Background()), ErrSubmitting)
	close(release)
	wg.Wait()
}

func TestReviewAndRejectRequireText(t *testing.T) {
	review := NewReviewModal("e1", func(context.Context, Review) error { return nil })
	var verr *ValidationError
	require.ErrorAs(t, review.Submit(context.Background()), &verr)
	assert.True(t, verr.Has("comments"))

	var got Reject
	reject := NewRejectModal("e1", func(_ context.Context, r Reject) error {
		got = r
		return nil
	})
	reject.Update(func(r Reject) Reject {
		r.Reason = " duplicate "
		return r
	})
	require.NoError(t, reject.Submit(context.Background()))
	assert.Equal(t, Reject{EvaluationID: "e1", Reason: "duplicate"}, got)
}

func TestAssignmentRefusesBusyEmployee(t *testing.T) {
	modal := NewAssignmentModal(Assignment{ProjectID: "p1", EmployeeID: "u1", Availability: "busy"}, func(context.Context, Assignment) error {
		t.Fatal("should not confirm")
		return nil
	})
	var verr *ValidationError
	require.ErrorAs(t, modal.Submit(context.Background()), &verr)
	assert.True(t, verr.Has("availability"))

	_, err := PrepareAssignment(Assignment{ProjectID: "p1"})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("employee_id"))
}
