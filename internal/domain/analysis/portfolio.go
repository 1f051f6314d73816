package analysis

import (
	"math"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

const (
	DefaultKnowledgeDomain = "General"
	DefaultMaturity        = "Developing"
)

// BuildPortfolio groups projects by knowledge domain in first-seen order and
// counts employees who list that domain. The default domain is dropped.
func BuildPortfolio(projects []project.Project, employees []personnel.Employee) Portfolio {
	index := map[string]int{}
	entries := []PortfolioEntry{}
	seenTech := map[string]map[string]bool{}

	for _, p := range projects {
		name := p.KnowledgeDomain
		if name == "" {
			name = DefaultKnowledgeDomain
		}
		i, ok := index[name]
		if !ok {
			i = len(entries)
			index[name] = i
			entries = append(entries, PortfolioEntry{DomainName: name, MaturityLevel: DefaultMaturity, TechDomains: []string{}})
			seenTech[name] = map[string]bool{}
		}
		entries[i].ProjectCount++
		for _, tech := range p.TechDomains {
			if !seenTech[name][tech] {
				seenTech[name][tech] = true
				entries[i].TechDomains = append(entries[i].TechDomains, tech)
			}
		}
	}

	for _, e := range employees {
		if e.DomainExperience == nil {
			continue
		}
		for _, kd := range e.DomainExperience.KnowledgeDomains {
			if i, ok := index[kd.Domain]; ok {
				entries[i].ExpertCount++
			}
		}
	}

	out := Portfolio{Entries: make([]PortfolioEntry, 0, len(entries))}
	for _, entry := range entries {
		if entry.DomainName == DefaultKnowledgeDomain {
			continue
		}
		out.Entries = append(out.Entries, entry)
		out.Totals.Projects += entry.ProjectCount
		out.Totals.Experts += entry.ExpertCount
	}
	out.Totals.Domains = len(out.Entries)
	if out.Totals.Domains > 0 {
		out.Totals.AvgProjectsPerArea = int(math.Round(float64(out.Totals.Projects) / float64(out.Totals.Domains)))
	}
	return out
}
