package project

import (
	"strings"

	"github.com/tidwall/gjson"
)

const (
	DefaultClient          = "Client"
	DefaultRequiredMembers = 5
	UndecidedDate          = "TBD"
)

// MapStatus folds the backend's free-form status into the three display states.
func MapStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "진행중", "active", "in-progress":
		return StatusInProgress
	case "완료", "completed":
		return StatusCompleted
	default:
		return StatusPlanning
	}
}

// TeamSizing returns assigned and required head counts. A missing or falsy
// team_members counts as an empty team; team_size stands in only when the
// field holds something other than an array. Assigned may exceed required.
func TeamSizing(p Project) (assigned, required int) {
	members := gjson.ParseBytes(p.TeamMembers)
	switch {
	case falsy(members):
		assigned = 0
	case members.IsArray():
		assigned = len(members.Array())
	default:
		assigned = p.TeamSize
	}
	required = p.TeamSize
	if required == 0 {
		required = assigned
	}
	if required == 0 {
		required = DefaultRequiredMembers
	}
	return assigned, required
}

func falsy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.String:
		return r.Str == ""
	case gjson.Number:
		return r.Num == 0
	}
	return false
}

func ToSummary(p Project) Summary {
	assigned, required := TeamSizing(p)
	client := firstNonEmpty(p.ClientName, p.ClientIndustry, DefaultClient)
	start := firstNonEmpty(p.StartDate, UndecidedDate)
	end := firstNonEmpty(p.EndDate, p.StartDate, UndecidedDate)
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return Summary{
		ID:              p.ProjectID,
		Name:            p.ProjectName,
		Client:          client,
		Status:          MapStatus(p.Status),
		RequiredSkills:  skills,
		AssignedMembers: assigned,
		RequiredMembers: required,
		StartDate:       start,
		EndDate:         end,
	}
}

func ToSummaries(projects []Project) []Summary {
	out := make([]Summary, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToSummary(p))
	}
	return out
}

// FilterSummaries keeps projects whose name, client or any required skill
// contains the query, ignoring case.
func FilterSummaries(summaries []Summary, query string) []Summary {
	needle := strings.ToLower(query)
	out := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if matches(s, needle) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s Summary, needle string) bool {
	if strings.Contains(strings.ToLower(s.Name), needle) || strings.Contains(strings.ToLower(s.Client), needle) {
		return true
	}
	for _, skill := range s.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

// AddSkill appends a trimmed skill unless it is blank or already present.
func (n NewProject) AddSkill(skill string) NewProject {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return n
	}
	for _, existing := range n.RequiredSkills {
		if existing == trimmed {
			return n
		}
	}
	n.RequiredSkills = append(append([]string(nil), n.RequiredSkills...), trimmed)
	return n
}

// Clean trims text fields before submission.
func (n NewProject) Clean() NewProject {
	n.ProjectName = strings.TrimSpace(n.ProjectName)
	n.ClientIndustry = strings.TrimSpace(n.ClientIndustry)
	n.StartDate = strings.TrimSpace(n.StartDate)
	return n
}

func (n NewProject) RemoveSkill(skill string) NewProject {
	kept := make([]string, 0, len(n.RequiredSkills))
	for _, existing := range n.RequiredSkills {
		if existing != skill {
			kept = append(kept, existing)
		}
	}
	n.RequiredSkills = kept
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
