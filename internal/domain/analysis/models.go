package analysis

import "encoding/json"

const AnalysisNewDomains = "new_domains"

type Request struct {
	AnalysisType string `json:"analysis_type,omitempty"`
}

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

func BandFor(feasibility float64) Band {
	switch {
	case feasibility >= 70:
		return BandHigh
	case feasibility >= 40:
		return BandMedium
	default:
		return BandLow
	}
}

type TransferableEmployee struct {
	UserID         string   `json:"user_id"`
	Name           string   `json:"name"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	TransferScore  float64  `json:"transfer_score,omitempty"`
	YearsOfCareer  float64  `json:"years_of_experience,omitempty"`
	CurrentDomains []string `json:"current_domains,omitempty"`
}

type Domain struct {
	DomainName            string                 `json:"domain_name"`
	FeasibilityScore      float64                `json:"feasibility_score"`
	RequiredSkills        []string               `json:"required_skills"`
	MatchedSkills         []string               `json:"matched_skills"`
	SkillGap              []string               `json:"skill_gap"`
	SkillProficiency      map[string]float64     `json:"skill_proficiency,omitempty"`
	TransferableEmployees []TransferableEmployee `json:"transferable_employees,omitempty"`
	RecommendedTeam       json.RawMessage        `json:"recommended_team,omitempty"`
	Reasoning             string                 `json:"reasoning"`
}

func (d Domain) Band() Band {
	return BandFor(d.FeasibilityScore)
}

type DomainResult struct {
	CurrentDomains        []string `json:"current_domains"`
	IdentifiedDomains     []Domain `json:"identified_domains"`
	TotalProjectsAnalyzed int      `json:"total_projects_analyzed"`
	TotalEmployees        int      `json:"total_employees"`
}

// PortfolioEntry aggregates fetched projects and employees for one knowledge domain.
type PortfolioEntry struct {
	DomainName    string   `json:"domain_name"`
	ProjectCount  int      `json:"project_count"`
	ExpertCount   int      `json:"expert_count"`
	MaturityLevel string   `json:"maturity_level"`
	TechDomains   []string `json:"tech_domains"`
}

type PortfolioTotals struct {
	Domains            int `json:"domains"`
	Projects           int `json:"projects"`
	Experts            int `json:"experts"`
	AvgProjectsPerArea int `json:"avg_projects_per_domain"`
}

type Portfolio struct {
	Entries []PortfolioEntry `json:"entries"`
	Totals  PortfolioTotals  `json:"totals"`
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

type SkillEvaluation struct {
	SkillName   string  `json:"skill_name"`
	TrendScore  float64 `json:"trend_score"`
	DemandScore float64 `json:"demand_score"`
}

type Quantitative struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	ExperienceMetrics struct {
		YearsOfExperience float64 `json:"years_of_experience"`
		ProjectCount      int     `json:"project_count"`
		SkillDiversity    int     `json:"skill_diversity"`
		ExperienceScore   float64 `json:"experience_score"`
		ProjectScore      float64 `json:"project_score"`
		DiversityScore    float64 `json:"diversity_score"`
	} `json:"experience_metrics"`
	TechEvaluation struct {
		SkillEvaluations []SkillEvaluation `json:"skill_evaluations"`
		AvgTrendScore    float64           `json:"avg_trend_score"`
		AvgDemandScore   float64           `json:"avg_demand_score"`
		TechStackScore   float64           `json:"tech_stack_score"`
	} `json:"tech_evaluation"`
	ProjectScores struct {
		ProjectEvaluations     json.RawMessage `json:"project_evaluations,omitempty"`
		AvgScaleScore          float64         `json:"avg_scale_score"`
		AvgRoleScore           float64         `json:"avg_role_score"`
		AvgPerformanceScore    float64         `json:"avg_performance_score"`
		ProjectExperienceScore float64         `json:"project_experience_score"`
	} `json:"project_scores"`
	OverallScore float64 `json:"overall_score"`
}

type SuspiciousFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type Qualitative struct {
	UserID            string           `json:"user_id"`
	Name              string           `json:"name"`
	Strengths         json.RawMessage  `json:"strengths,omitempty"`
	Weaknesses        json.RawMessage  `json:"weaknesses,omitempty"`
	SuitableProjects  json.RawMessage  `json:"suitable_projects,omitempty"`
	DevelopmentAreas  json.RawMessage  `json:"development_areas,omitempty"`
	SuspiciousFlags   []SuspiciousFlag `json:"suspicious_flags"`
	OverallAssessment string           `json:"overall_assessment"`
}
