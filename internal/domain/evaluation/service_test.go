package evaluation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	status      Status
	transitions []Transition
	evaluated   string
}

func (f *fakeGateway) ListEvaluations(_ context.Context, status Status) ([]Evaluation, error) {
	f.status = status
	return []Evaluation{{EvaluationID: "e1", Status: StatusPending}}, nil
}

func (f *fakeGateway) TransitionEvaluation(_ context.Context, id string, t Transition) (TransitionResult, error) {
	f.transitions = append(f.transitions, t)
	return TransitionResult{Evaluation: Evaluation{EvaluationID: id, Status: t.Status}, Message: "updated"}, nil
}

func (f *fakeGateway) EvaluateEmployee(_ context.Context, employeeID string) (EmployeeResult, error) {
	f.evaluated = employeeID
	return EmployeeResult{EmployeeID: employeeID}, nil
}

func TestListRejectsUnknownStatus(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewService(gw).List(context.Background(), "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, err := NewService(gw).List(context.Background(), StatusReview)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, StatusReview, gw.status)
}

func TestTransitionsCarryPayload(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	_, err := svc.Review(context.Background(), "e1", "  ")
	assert.ErrorIs(t, err, ErrCommentsNeeded)
	_, err = svc.Reject(context.Background(), "e1", "")
	assert.ErrorIs(t, err, ErrReasonNeeded)
	assert.Empty(t, gw.transitions)

	_, err = svc.Approve(context.Background(), "e1")
	require.NoError(t, err)
	_, err = svc.Review(context.Background(), "e1", " needs detail ")
	require.NoError(t, err)
	res, err := svc.Reject(context.Background(), "e1", "duplicate")
	require.NoError(t, err)

	assert.Equal(t, []Transition{
		{Status: StatusApproved},
		{Status: StatusReview, Comments: "needs detail"},
		{Status: StatusRejected, Reason: "duplicate"},
	}, gw.transitions)
	assert.Equal(t, StatusRejected, res.Evaluation.Status)
}

func TestActionable(t *testing.T) {
	assert.True(t, Evaluation{Status: StatusPending}.Actionable())
	assert.True(t, Evaluation{Status: StatusReview}.Actionable())
	assert.False(t, Evaluation{Status: StatusApproved}.Actionable())
	assert.ErrorIs(t, Guard(Evaluation{Status: StatusRejected}), ErrNotActionable)
	assert.NoError(t, Guard(Evaluation{Status: StatusPending}))
}

func TestEvaluateRequiresEmployee(t *testing.T) {
	gw := &fakeGateway{}
	_, err := NewService(gw).Evaluate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoEmployee)
	_, err = NewService(gw).Evaluate(context.Background(), "u7")
	require.NoError(t, err)
	assert.Equal(t, "u7", gw.evaluated)
}

func TestGradeFor(t *testing.T) {
	assert.Equal(t, GradeExcellent, GradeFor(85))
	assert.Equal(t, GradeGood, GradeFor(70))
	assert.Equal(t, GradeFair, GradeFor(60))
	assert.Equal(t, GradePoor, GradeFor(59.9))
}

func TestReportProducesPDF(t *testing.T) {
	reporter, err := NewReporter("")
	require.NoError(t, err)
	out, err := reporter.Render(EmployeeResult{
		EmployeeID:       "u1",
		EmployeeName:     "Kim Minsu",
		EvaluationDate:   "2025-03-01",
		Scores:           Scores{TechnicalSkills: 88, ProjectExperience: 75, ResumeCredibility: 90, CulturalFit: 70},
		OverallScore:     81,
		Strengths:        []string{"Cloud architecture"},
		Weaknesses:       []string{"Frontend"},
		Analysis:         Analysis{TechStack: "Go, AWS"},
		AIRecommendation: "Suitable for fintech projects",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func utf16be(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func TestReportKeepsHangulText(t *testing.T) {
	reporter := &Reporter{regular: defaultRegular, bold: defaultBold}
	out, err := reporter.Render(EmployeeResult{
		EmployeeID:   "E001",
		EmployeeName: "김철수",
		OverallScore: 72,
		Strengths:    []string{"클라우드 설계"},
	})
	require.NoError(t, err)

	assert.True(t, bytes.Contains(out, utf16be("김철수")))
	assert.True(t, bytes.Contains(out, utf16be("클라우드 설계")))
	assert.False(t, bytes.Contains(out, []byte("Employee: ... (E001)")))
}

func TestNewReporterRejectsNonTrueType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("<html>not a font</html>"), 0o600))
	_, err := NewReporter(path)
	require.ErrorIs(t, err, ErrNotTrueType)

	_, err = NewReporter(filepath.Join(t.TempDir(), "missing.ttf"))
	require.Error(t, err)

	ttf := filepath.Join(t.TempDir(), "dejavu.ttf")
	require.NoError(t, os.WriteFile(ttf, defaultRegular, 0o600))
	reporter, err := NewReporter(ttf)
	require.NoError(t, err)
	out, err := reporter.Render(EmployeeResult{EmployeeID: "E002", EmployeeName: "Lee"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
