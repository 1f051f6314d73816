package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"matchmind/internal/domain/analysis"
	"matchmind/internal/platform/jobs"
	"matchmind/internal/views"
)

func newDashboardCmd(e *env) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show headcount, project and review metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewDashboard(e.dashboard())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := e.printDashboard(view.State()); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return e.watch(cmd.Context(), func(ctx context.Context, s *jobs.Scheduler) {
				view.AutoRefresh(ctx, s, e.cfg.AutoRefreshInterval, func(state views.DashboardState) {
					_ = e.printDashboard(state)
				})
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "keep refreshing on AUTO_REFRESH_INTERVAL until interrupted")
	return cmd
}

func (e *env) printDashboard(state views.DashboardState) error {
	if ok, err := e.emit(state); ok {
		return err
	}
	m := state.Metrics
	summary := newTable("Dashboard "+mutedStyle.Render(state.UpdatedAt.Format("15:04:05")), "Metric", "Value")
	summary.add("Total employees", itoa(m.TotalEmployees))
	summary.add("Active projects", itoa(m.ActiveProjects))
	summary.add("Available employees", itoa(m.AvailableEmployees))
	summary.add("Pending reviews", itoa(m.PendingReviews))
	summary.add("Utilization", score(m.Utilization())+"%")
	e.out.Println(summary.String())

	recent := newTable("Recent recommendations", "Project", "Recommended", "Match rate", "Status")
	for _, r := range m.RecentRecommendations {
		recent.add(r.Project, itoa(r.Recommended), score(r.MatchRate)+"%", r.Status)
	}
	e.out.Println(recent.String())

	skills := newTable("Top skills", "Skill", "Count", "Share")
	for _, s := range m.TopSkills {
		skills.add(s.Name, itoa(s.Count), score(s.Percentage)+"%")
	}
	e.out.Println(skills.String())
	return nil
}

func newDomainsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Knowledge-domain analysis",
	}

	analyze := &cobra.Command{
		Use:   "analyze",
		Short: "Ask the backend which new domains the workforce could enter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := views.NewDomainAnalysis(e.analysis()).Analyze(cmd.Context())
			if err != nil {
				return err
			}
			if ok, err := e.emit(result); ok {
				return err
			}
			t := newTable("Domain expansion", "Domain", "Feasibility", "Band", "Matched", "Gap")
			for _, d := range result.IdentifiedDomains {
				t.add(d.DomainName, score(d.FeasibilityScore), string(d.Band()), joinOr(d.MatchedSkills, "-"), joinOr(d.SkillGap, "-"))
			}
			e.out.Println(t.String())
			e.out.Printf("Current domains: %s\n", joinOr(result.CurrentDomains, "none"))
			e.out.Printf("Analyzed %d projects across %d employees\n", result.TotalProjectsAnalyzed, result.TotalEmployees)
			return nil
		},
	}

	var watch bool
	portfolio := &cobra.Command{
		Use:   "portfolio",
		Short: "Summarize current domain coverage from projects and employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewDomainAnalysis(e.analysis())
			if err := view.LoadPortfolio(cmd.Context()); err != nil {
				return err
			}
			if err := e.printPortfolio(view.State().Portfolio); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return e.watch(cmd.Context(), func(ctx context.Context, s *jobs.Scheduler) {
				view.AutoRefresh(ctx, s, e.cfg.AutoRefreshInterval, func(state views.DomainState) {
					_ = e.printPortfolio(state.Portfolio)
				})
			})
		},
	}
	portfolio.Flags().BoolVar(&watch, "watch", false, "keep refreshing on AUTO_REFRESH_INTERVAL until interrupted")

	cmd.AddCommand(analyze, portfolio)
	return cmd
}

func (e *env) printPortfolio(p analysis.Portfolio) error {
	if ok, err := e.emit(p); ok {
		return err
	}
	t := newTable("Domain portfolio", "Domain", "Projects", "Experts", "Maturity", "Tech")
	for _, entry := range p.Entries {
		t.add(entry.DomainName, itoa(entry.ProjectCount), itoa(entry.ExpertCount), entry.MaturityLevel, joinOr(entry.TechDomains, "-"))
	}
	e.out.Println(t.String())
	e.out.Printf("%d domains, %d projects, %d experts, %d projects per domain\n",
		p.Totals.Domains, p.Totals.Projects, p.Totals.Experts, p.Totals.AvgProjectsPerArea)
	return nil
}

// watch runs schedule until SIGINT or SIGTERM and then waits for in-flight refreshes.
func (e *env) watch(parent context.Context, schedule func(ctx context.Context, s *jobs.Scheduler)) error {
	if e.cfg.AutoRefreshInterval <= 0 {
		return errors.New("--watch needs a positive AUTO_REFRESH_INTERVAL")
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	scheduler := jobs.New(e.log)
	schedule(ctx, scheduler)
	<-ctx.Done()
	scheduler.Wait()
	return nil
}
