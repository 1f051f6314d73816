package personnel

import "strings"

const DefaultDepartment = "Development"

// ToMember projects a backend record onto the personnel tab row. Fields the
// backend does not carry fall back to display defaults.
func ToMember(emp Employee) Member {
	department := emp.Department
	if department == "" {
		department = DefaultDepartment
	}
	availability := emp.Availability
	if availability == "" {
		availability = AvailabilityAvailable
	}
	return Member{
		ID:             emp.Identifier(),
		Name:           emp.DisplayName(),
		Position:       emp.BasicInfo.Role,
		Department:     department,
		Skills:         emp.SkillNames(),
		Experience:     emp.BasicInfo.YearsOfExperience,
		CurrentProject: emp.CurrentProject,
		Availability:   availability,
	}
}

func ToMembers(employees []Employee) []Member {
	out := make([]Member, 0, len(employees))
	for _, emp := range employees {
		out = append(out, ToMember(emp))
	}
	return out
}

// FilterMembers keeps members whose name, position or any skill contains the
// query, ignoring case. An empty query keeps everything.
func FilterMembers(members []Member, query string) []Member {
	needle := strings.ToLower(query)
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if contains(m.Name, needle) || contains(m.Position, needle) || anyContains(m.Skills, needle) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByName keeps employees whose resolved name contains the query.
func FilterByName(employees []Employee, query string) []Employee {
	needle := strings.ToLower(query)
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if contains(emp.DisplayName(), needle) {
			out = append(out, emp)
		}
	}
	return out
}

// Clean trims text fields and drops blank skills and certifications.
func (n NewEmployee) Clean() NewEmployee {
	n.Name = strings.TrimSpace(n.Name)
	n.Email = strings.TrimSpace(n.Email)
	n.Role = strings.TrimSpace(n.Role)
	n.Department = strings.TrimSpace(n.Department)
	skills := make([]Skill, 0, len(n.Skills))
	for _, skill := range n.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			continue
		}
		skill.Name = strings.TrimSpace(skill.Name)
		skills = append(skills, skill)
	}
	certs := make([]string, 0, len(n.Certifications))
	for _, cert := range n.Certifications {
		if strings.TrimSpace(cert) == "" {
			continue
		}
		certs = append(certs, strings.TrimSpace(cert))
	}
	n.Skills = skills
	n.Certifications = certs
	return n
}

func contains(value, needle string) bool {
	return strings.Contains(strings.ToLower(value), needle)
}

func anyContains(values []string, needle string) bool {
	for _, value := range values {
		if contains(value, needle) {
			return true
		}
	}
	return false
}
