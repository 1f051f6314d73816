package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchmind/internal/domain/recommendation"
	"matchmind/internal/views"
)

func newRecommendCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [project-id]",
		Short: "Rank employees for a project (defaults to the first project)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewRecommendation(e.projects(), e.recommendations())
			if len(args) == 1 {
				view.Select(args[0])
			} else if err := view.LoadProjects(cmd.Context()); err != nil {
				return err
			}
			recs, err := view.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			if ok, err := e.emit(recs); ok {
				return err
			}
			t := newTable("Recommendations for "+view.State().SelectedProject,
				"Employee", "Role", "Overall", "Skill", "Affinity", "Availability", "Matched skills")
			for _, r := range recs {
				t.add(r.Name+mutedStyle.Render(" ("+r.UserID+")"), r.Role, score(r.OverallScore),
					score(r.SkillMatchScore), score(r.AffinityScore), availability(r.Availability),
					joinOr(r.MatchedSkills, "-"))
			}
			e.out.Println(t.String())
			for _, r := range recs {
				if r.Reasoning != "" {
					e.out.Printf("%s %s\n", titleStyle.Render(r.Name+":"), r.Reasoning)
				}
			}
			return nil
		},
	}
}

func newAssignCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <project-id> <employee-id>",
		Short: "Assign an employee to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, employeeID := args[0], args[1]

			members, err := e.personnel().Members(cmd.Context())
			if err != nil {
				return err
			}
			rec := recommendation.Recommendation{UserID: employeeID, Availability: recommendation.DefaultAvailability}
			for _, m := range members {
				if m.ID == employeeID {
					rec.Name = m.Name
					rec.Availability = string(m.Availability)
					break
				}
			}

			view := views.NewRecommendation(e.projects(), e.recommendations())
			view.Select(projectID)
			modal := view.AssignModal(rec)
			if err := modal.Submit(cmd.Context()); err != nil {
				return err
			}
			state := view.State()
			if ok, err := e.emit(state); ok {
				return err
			}
			name := rec.Name
			if name == "" {
				name = employeeID
			}
			e.out.Println(successStyle.Render(fmt.Sprintf("%s assigned to %s", name, projectID)))
			if state.LastAssignment != "" {
				e.out.Println(mutedStyle.Render(state.LastAssignment))
			}
			return nil
		},
	}
}
