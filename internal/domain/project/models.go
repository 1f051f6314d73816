package project

import "encoding/json"

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Period struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	DurationMonths int    `json:"duration_months"`
}

type TechStack struct {
	Backend  []string `json:"backend"`
	Frontend []string `json:"frontend"`
	Data     []string `json:"data"`
	Infra    []string `json:"infra"`
}

// Project mirrors the backend record. TeamMembers stays raw because the
// backend sends either a member list or nothing at all.
type Project struct {
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	ClientName      string          `json:"client_name,omitempty"`
	ClientIndustry  string          `json:"client_industry,omitempty"`
	Status          string          `json:"status,omitempty"`
	RequiredSkills  []string        `json:"required_skills"`
	TeamSize        int             `json:"team_size,omitempty"`
	TeamMembers     json.RawMessage `json:"team_members,omitempty"`
	StartDate       string          `json:"start_date,omitempty"`
	EndDate         string          `json:"end_date,omitempty"`
	Period          *Period         `json:"period,omitempty"`
	TechStack       *TechStack      `json:"tech_stack,omitempty"`
	Requirements    []string        `json:"requirements,omitempty"`
	BudgetScale     string          `json:"budget_scale,omitempty"`
	Description     string          `json:"description,omitempty"`
	KnowledgeDomain string          `json:"knowledge_domain,omitempty"`
	TechDomains     []string        `json:"tech_domains,omitempty"`
}

// NewProject is the registration payload sent to the backend.
type NewProject struct {
	ProjectName    string   `json:"project_name" validate:"required"`
	ClientIndustry string   `json:"client_industry" validate:"required"`
	RequiredSkills []string `json:"required_skills" validate:"min=1"`
	DurationMonths int      `json:"duration_months" validate:"gt=0"`
	TeamSize       int      `json:"team_size" validate:"gt=0"`
	StartDate      string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	BudgetScale    string   `json:"budget_scale,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// Summary is the row shown on the project tab.
type Summary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Client          string   `json:"client"`
	Status          Status   `json:"status"`
	RequiredSkills  []string `json:"requiredSkills"`
	AssignedMembers int      `json:"assignedMembers"`
	RequiredMembers int      `json:"requiredMembers"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	MatchRate       *float64 `json:"matchRate,omitempty"`
}
