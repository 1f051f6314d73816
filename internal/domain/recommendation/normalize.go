package recommendation

import "github.com/tidwall/gjson"

// ParseResult reads a recommendations response and fills candidate gaps.
// A zero score falls through to the next candidate value.
func ParseResult(body []byte) Result {
	doc := gjson.ParseBytes(body)
	result := Result{
		ProjectID:       doc.Get("project_id").String(),
		Recommendations: []Recommendation{},
	}
	doc.Get("recommendations").ForEach(func(_, item gjson.Result) bool {
		result.Recommendations = append(result.Recommendations, fromJSON(item))
		return true
	})
	return result
}

func fromJSON(item gjson.Result) Recommendation {
	score := item.Get("score").Float()
	return Recommendation{
		UserID:            item.Get("user_id").String(),
		Name:              item.Get("name").String(),
		Role:              orString(item.Get("role").String(), DefaultRole),
		SkillMatchScore:   orFloat(item.Get("skill_match_score").Float(), score),
		AffinityScore:     item.Get("affinity_score").Float(),
		AvailabilityScore: orFloat(item.Get("availability_score").Float(), DefaultAvailabilityScore),
		OverallScore:      orFloat(item.Get("overall_score").Float(), score),
		Reasoning:         item.Get("reasoning").String(),
		MatchedSkills:     stringList(item.Get("matched_skills")),
		TeamSynergy:       stringList(item.Get("team_synergy")),
		YearsOfExperience: item.Get("years_of_experience").Float(),
		Availability:      orString(item.Get("availability").String(), DefaultAvailability),
	}
}

func stringList(v gjson.Result) []string {
	out := []string{}
	if !v.IsArray() {
		return out
	}
	for _, s := range v.Array() {
		out = append(out, s.String())
	}
	return out
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
