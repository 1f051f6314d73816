package recommendation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultAppliesFallbacks(t *testing.T) {
	body := []byte(`{
		"project_id": "p1",
		"recommendations": [
			{"user_id": "u1", "name": "Kim", "score": 82.5, "reasoning": "fits"},
			{"user_id": "u2", "name": "Lee", "role": "Architect", "skill_match_score": 90,
			 "affinity_score": 70, "availability_score": 40, "overall_score": 75,
			 "matched_skills": ["Go"], "availability": "busy", "years_of_experience": 9}
		]
	}`)

	result := ParseResult(body)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "p1", result.ProjectID)

	first := result.Recommendations[0]
	assert.Equal(t, DefaultRole, first.Role)
	assert.Equal(t, 82.5, first.SkillMatchScore)
	assert.Equal(t, 82.5, first.OverallScore)
	assert.Equal(t, float64(DefaultAvailabilityScore), first.AvailabilityScore)
	assert.Equal(t, DefaultAvailability, first.Availability)
	assert.Empty(t, first.MatchedSkills)
	assert.NotNil(t, first.TeamSynergy)
	assert.True(t, first.CanAssign())

	second := result.Recommendations[1]
	assert.Equal(t, "Architect", second.Role)
	assert.Equal(t, float64(90), second.SkillMatchScore)
	assert.Equal(t, float64(40), second.AvailabilityScore)
	assert.Equal(t, []string{"Go"}, second.MatchedSkills)
	assert.False(t, second.CanAssign())
}

func TestParseResultZeroScoreFallsThrough(t *testing.T) {
	result := ParseResult([]byte(`{"recommendations":[{"user_id":"u1","overall_score":0,"score":55,"availability_score":0}]}`))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, float64(55), result.Recommendations[0].OverallScore)
	assert.Equal(t, float64(100), result.Recommendations[0].AvailabilityScore)
}

func TestParseResultWithoutList(t *testing.T) {
	result := ParseResult([]byte(`{"project_id":"p1"}`))
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}

type fakeGateway struct {
	assigned [2]string
	calls    int
}

func (f *fakeGateway) Recommendations(_ context.Context, req Request) (Result, error) {
	f.calls++
	return Result{ProjectID: req.ProjectID}, nil
}

func (f *fakeGateway) AssignProject(_ context.Context, projectID, employeeID string) (Assignment, error) {
	f.calls++
	f.assigned = [2]string{projectID, employeeID}
	return Assignment{Message: "ok"}, nil
}

func TestServiceRequiresSelection(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	_, err := svc.Recommend(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNoProject)
	_, err = svc.Assign(context.Background(), "p1", "")
	assert.ErrorIs(t, err, ErrNoEmployee)
	assert.Zero(t, gw.calls)

	got, err := svc.Assign(context.Background(), "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Message)
	assert.Equal(t, [2]string{"p1", "u1"}, gw.assigned)
}
