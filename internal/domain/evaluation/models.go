package evaluation

import "encoding/json"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusReview   Status = "review"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusReview, StatusRejected:
		return true
	}
	return false
}

type Kind string

const (
	KindCareer     Kind = "career"
	KindFreelancer Kind = "freelancer"
)

type Evaluation struct {
	EvaluationID         string          `json:"evaluation_id"`
	UserID               string          `json:"user_id"`
	Name                 string          `json:"name"`
	Type                 Kind            `json:"type"`
	Status               Status          `json:"status"`
	OverallScore         float64         `json:"overall_score"`
	SubmittedAt          string          `json:"submitted_at"`
	QuantitativeAnalysis json.RawMessage `json:"quantitative_analysis,omitempty"`
	QualitativeAnalysis  json.RawMessage `json:"qualitative_analysis,omitempty"`
	ReviewComments       string          `json:"review_comments,omitempty"`
	RejectionReason      string          `json:"rejection_reason,omitempty"`
}

// Actionable reports whether approve, review and reject are offered.
func (e Evaluation) Actionable() bool {
	return e.Status == StatusPending || e.Status == StatusReview
}

type Transition struct {
	Status   Status `json:"status"`
	Comments string `json:"comments,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type TransitionResult struct {
	Evaluation Evaluation `json:"evaluation"`
	Message    string     `json:"message"`
}

type Scores struct {
	TechnicalSkills   float64 `json:"technical_skills"`
	ProjectExperience float64 `json:"project_experience"`
	ResumeCredibility float64 `json:"resume_credibility"`
	CulturalFit       float64 `json:"cultural_fit"`
}

type Analysis struct {
	TechStack         string `json:"tech_stack"`
	ProjectSimilarity string `json:"project_similarity"`
	Credibility       string `json:"credibility"`
	MarketComparison  string `json:"market_comparison"`
}

// EmployeeResult is the on-demand evaluation of a single employee.
type EmployeeResult struct {
	EvaluationID     string          `json:"evaluation_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	EvaluationDate   string          `json:"evaluation_date"`
	Scores           Scores          `json:"scores"`
	OverallScore     float64         `json:"overall_score"`
	Strengths        []string        `json:"strengths"`
	Weaknesses       []string        `json:"weaknesses"`
	Analysis         Analysis        `json:"analysis"`
	AIRecommendation string          `json:"ai_recommendation"`
	ProjectHistory   json.RawMessage `json:"project_history,omitempty"`
	Skills           json.RawMessage `json:"skills,omitempty"`
	ExperienceYears  float64         `json:"experience_years"`
	Status           string          `json:"status"`
}

type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradePoor      Grade = "poor"
)

func GradeFor(score float64) Grade {
	switch {
	case score >= 85:
		return GradeExcellent
	case score >= 70:
		return GradeGood
	case score >= 60:
		return GradeFair
	default:
		return GradePoor
	}
}
