package personnel

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

var SkillLevels = []string{
	string(SkillBeginner),
	string(SkillIntermediate),
	string(SkillAdvanced),
	string(SkillExpert),
}

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityPending   Availability = "pending"
)

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
	Years float64    `json:"years"`
}

type BasicInfo struct {
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	YearsOfExperience float64 `json:"years_of_experience"`
	Email             string  `json:"email"`
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
}

type WorkExperience struct {
	ProjectID         string   `json:"project_id"`
	ProjectName       string   `json:"project_name"`
	Role              string   `json:"role"`
	Period            string   `json:"period"`
	MainTasks         []string `json:"main_tasks"`
	PerformanceResult string   `json:"performance_result,omitempty"`
}

type KnowledgeDomain struct {
	Domain string `json:"domain"`
}

type DomainExperience struct {
	KnowledgeDomains []KnowledgeDomain `json:"knowledge_domains"`
}

// Employee mirrors the backend record. Name and ID aliases exist because
// older records carry flat name and id fields instead of basic_info.
type Employee struct {
	UserID           string            `json:"user_id"`
	BasicInfo        BasicInfo         `json:"basic_info"`
	SelfIntroduction string            `json:"self_introduction,omitempty"`
	Skills           []Skill           `json:"skills"`
	WorkExperience   []WorkExperience  `json:"work_experience"`
	Education        *Education        `json:"education,omitempty"`
	Certifications   []string          `json:"certifications"`
	DomainExperience *DomainExperience `json:"domain_experience,omitempty"`

	Department     string       `json:"department,omitempty"`
	Availability   Availability `json:"availability,omitempty"`
	CurrentProject *string      `json:"current_project,omitempty"`

	Name         string `json:"name,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	LegacyID     string `json:"employee_id,omitempty"`
	ID           string `json:"id,omitempty"`
}

// DisplayName resolves the name across record generations.
func (e Employee) DisplayName() string {
	for _, candidate := range []string{e.Name, e.EmployeeName, e.BasicInfo.Name} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Identifier resolves the employee id across record generations.
func (e Employee) Identifier() string {
	for _, candidate := range []string{e.UserID, e.EmployeeID, e.LegacyID, e.ID} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (e Employee) SkillNames() []string {
	names := make([]string, 0, len(e.Skills))
	for _, skill := range e.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// NewEmployee is the registration payload sent to the backend.
type NewEmployee struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,console_email"`
	Role              string   `json:"role" validate:"required"`
	YearsOfExperience float64  `json:"years_of_experience" validate:"gte=0"`
	Department        string   `json:"department" validate:"required"`
	Skills            []Skill  `json:"skills" validate:"min=1"`
	SelfIntroduction  string   `json:"self_introduction"`
	Degree            string   `json:"degree"`
	University        string   `json:"university"`
	Certifications    []string `json:"certifications"`
}

// Member is the row shown on the personnel tab.
type Member struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Position       string       `json:"position"`
	Department     string       `json:"department"`
	Skills         []string     `json:"skills"`
	Experience     float64      `json:"experience"`
	CurrentProject *string      `json:"currentProject"`
	Availability   Availability `json:"availability"`
}
