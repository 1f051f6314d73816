package forms

import (
	"strings"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

// PrepareEmployee cleans a registration draft and validates it.
func PrepareEmployee(draft personnel.NewEmployee) (personnel.NewEmployee, error) {
	cleaned := draft.Clean()
	if err := Check(cleaned); err != nil {
		return draft, err
	}
	return cleaned, nil
}

func PrepareProject(draft project.NewProject) (project.NewProject, error) {
	cleaned := draft.Clean()
	if err := Check(cleaned); err != nil {
		return draft, err
	}
	return cleaned, nil
}

func EmployeeDraft() personnel.NewEmployee {
	return personnel.NewEmployee{
		Department: personnel.DefaultDepartment,
		Skills:     []personnel.Skill{{Level: personnel.SkillIntermediate}},
	}
}

func ProjectDraft() project.NewProject {
	return project.NewProject{RequiredSkills: []string{}}
}

func NewEmployeeModal(onSubmit SubmitFunc[personnel.NewEmployee]) *Modal[personnel.NewEmployee] {
	return NewModal(EmployeeDraft(), PrepareEmployee, onSubmit)
}

func NewProjectModal(onSubmit SubmitFunc[project.NewProject]) *Modal[project.NewProject] {
	return NewModal(ProjectDraft(), PrepareProject, onSubmit)
}

type Review struct {
	EvaluationID string `json:"evaluation_id"`
	Comments     string `json:"comments"`
}

type Reject struct {
	EvaluationID string `json:"evaluation_id"`
	Reason       string `json:"reason"`
}

func PrepareReview(r Review) (Review, error) {
	r.Comments = strings.TrimSpace(r.Comments)
	return r, Required("comments", r.Comments)
}

func PrepareReject(r Reject) (Reject, error) {
	r.Reason = strings.TrimSpace(r.Reason)
	return r, Required("reason", r.Reason)
}

func NewReviewModal(evaluationID string, onSubmit SubmitFunc[Review]) *Modal[Review] {
	return NewModal(Review{EvaluationID: evaluationID}, PrepareReview, onSubmit)
}

func NewRejectModal(evaluationID string, onSubmit SubmitFunc[Reject]) *Modal[Reject] {
	return NewModal(Reject{EvaluationID: evaluationID}, PrepareReject, onSubmit)
}

// Assignment confirms placing one recommended employee on a project.
type Assignment struct {
	ProjectID    string `json:"project_id" validate:"required"`
	EmployeeID   string `json:"employee_id" validate:"required"`
	EmployeeName string `json:"employee_name"`
	Availability string `json:"availability"`
}

func PrepareAssignment(a Assignment) (Assignment, error) {
	if err := Check(a); err != nil {
		return a, err
	}
	if a.Availability == string(personnel.AvailabilityBusy) {
		return a, &ValidationError{Issues: []Issue{{Field: "availability", Reason: "employee is already assigned"}}}
	}
	return a, nil
}

func NewAssignmentModal(a Assignment, onConfirm SubmitFunc[Assignment]) *Modal[Assignment] {
	return NewModal(a, PrepareAssignment, onConfirm)
}
