package recommendation

import "encoding/json"

const (
	DefaultRole              = "Developer"
	DefaultAvailability      = "available"
	DefaultAvailabilityScore = 100
)

type Request struct {
	ProjectID string `json:"project_id"`
}

type Recommendation struct {
	UserID            string   `json:"user_id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	SkillMatchScore   float64  `json:"skill_match_score"`
	AffinityScore     float64  `json:"affinity_score"`
	AvailabilityScore float64  `json:"availability_score"`
	OverallScore      float64  `json:"overall_score"`
	Reasoning         string   `json:"reasoning"`
	MatchedSkills     []string `json:"matched_skills"`
	TeamSynergy       []string `json:"team_synergy"`
	YearsOfExperience float64  `json:"years_of_experience"`
	Availability      string   `json:"availability"`
}

// CanAssign reports whether the assignment action is offered for this candidate.
func (r Recommendation) CanAssign() bool {
	return r.Availability != "busy"
}

type Result struct {
	ProjectID       string           `json:"project_id"`
	Recommendations []Recommendation `json:"recommendations"`
}

type AssignRequest struct {
	EmployeeID string `json:"employee_id"`
}

type Assignment struct {
	Message    string          `json:"message"`
	Assignment json.RawMessage `json:"assignment,omitempty"`
}
