package dashboard

type RecentRecommendation struct {
	Project     string  `json:"project"`
	Recommended int     `json:"recommended"`
	MatchRate   float64 `json:"match_rate"`
	Status      string  `json:"status"`
}

type TopSkill struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Metrics struct {
	TotalEmployees        int                    `json:"total_employees"`
	ActiveProjects        int                    `json:"active_projects"`
	AvailableEmployees    int                    `json:"available_employees"`
	PendingReviews        int                    `json:"pending_reviews"`
	RecentRecommendations []RecentRecommendation `json:"recent_recommendations"`
	TopSkills             []TopSkill             `json:"top_skills"`
}

// Utilization is the share of employees not currently available, in percent.
func (m Metrics) Utilization() float64 {
	if m.TotalEmployees <= 0 {
		return 0
	}
	busy := m.TotalEmployees - m.AvailableEmployees
	if busy < 0 {
		busy = 0
	}
	return float64(busy) * 100 / float64(m.TotalEmployees)
}
