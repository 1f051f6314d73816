package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
	"matchmind/internal/views"
)

func newEmployeesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"personnel"},
		Short:   "List, search and register employees",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewPersonnel(e.personnel())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			return e.printMembers(view.State().Members)
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Filter employees by name, position or skill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewPersonnel(e.personnel())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			return e.printMembers(view.Search(strings.Join(args, " ")))
		},
	}

	var (
		draft  = personnel.NewEmployee{Department: personnel.DefaultDepartment}
		skills []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseSkills(skills)
			if err != nil {
				return err
			}
			draft.Skills = parsed

			view := views.NewPersonnel(e.personnel())
			view.Register.Open()
			view.Register.Set(draft)
			if err := view.Register.Submit(cmd.Context()); err != nil {
				return err
			}
			e.out.Println(successStyle.Render("Registered " + draft.Name))
			if state := view.State(); state.Err == "" {
				return e.printMembers(state.Members)
			}
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&draft.Name, "name", "", "full name")
	f.StringVar(&draft.Email, "email", "", "email address")
	f.StringVar(&draft.Role, "role", "", "position")
	f.Float64Var(&draft.YearsOfExperience, "years", 0, "years of experience")
	f.StringVar(&draft.Department, "department", personnel.DefaultDepartment, "department")
	f.StringArrayVar(&skills, "skill", nil, "skill as name[:level[:years]], repeatable")
	f.StringVar(&draft.SelfIntroduction, "intro", "", "self introduction")
	f.StringVar(&draft.Degree, "degree", "", "degree")
	f.StringVar(&draft.University, "university", "", "university")
	f.StringArrayVar(&draft.Certifications, "cert", nil, "certification, repeatable")

	cmd.AddCommand(list, search, create)
	return cmd
}

// parseSkills reads "name[:level[:years]]" values. Level defaults to Intermediate.
func parseSkills(values []string) ([]personnel.Skill, error) {
	out := make([]personnel.Skill, 0, len(values))
	for _, raw := range values {
		parts := strings.Split(raw, ":")
		skill := personnel.Skill{Name: strings.TrimSpace(parts[0]), Level: personnel.SkillIntermediate}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			level := strings.TrimSpace(parts[1])
			if !slices.Contains(personnel.SkillLevels, level) {
				return nil, fmt.Errorf("skill %q: level must be one of %s", skill.Name, strings.Join(personnel.SkillLevels, ", "))
			}
			skill.Level = personnel.SkillLevel(level)
		}
		if len(parts) > 2 {
			years, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if err != nil || years < 0 {
				return nil, fmt.Errorf("skill %q: years must be a non-negative number", skill.Name)
			}
			skill.Years = years
		}
		out = append(out, skill)
	}
	return out, nil
}

func (e *env) printMembers(members []personnel.Member) error {
	if ok, err := e.emit(members); ok {
		return err
	}
	t := newTable("Employees", "ID", "Name", "Position", "Department", "Experience", "Availability", "Skills")
	for _, m := range members {
		t.add(m.ID, m.Name, m.Position, m.Department, score(m.Experience)+"y", availability(string(m.Availability)), joinOr(m.Skills, "-"))
	}
	e.out.Println(t.String())
	return nil
}

func newProjectsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, search and register projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewProjects(e.projects())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			return e.printProjects(view.State().Projects)
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Filter projects by name, client or required skill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewProjects(e.projects())
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			return e.printProjects(view.Search(strings.Join(args, " ")))
		},
	}

	var (
		draft  project.NewProject
		skills []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewProjects(e.projects())
			view.Register.Open()
			view.Register.Set(draft)
			for _, s := range skills {
				view.Register.Update(func(p project.NewProject) project.NewProject { return p.AddSkill(s) })
			}
			if err := view.Register.Submit(cmd.Context()); err != nil {
				return err
			}
			e.out.Println(successStyle.Render("Registered " + draft.ProjectName))
			if state := view.State(); state.Err == "" {
				return e.printProjects(state.Projects)
			}
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&draft.ProjectName, "name", "", "project name")
	f.StringVar(&draft.ClientIndustry, "client", "", "client industry")
	f.StringArrayVar(&skills, "skill", nil, "required skill, repeatable")
	f.IntVar(&draft.DurationMonths, "months", 0, "duration in months")
	f.IntVar(&draft.TeamSize, "team-size", 0, "team size")
	f.StringVar(&draft.StartDate, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&draft.BudgetScale, "budget", "", "budget scale")
	f.StringVar(&draft.Description, "description", "", "description")

	cmd.AddCommand(list, search, create)
	return cmd
}

func (e *env) printProjects(projects []project.Summary) error {
	if ok, err := e.emit(projects); ok {
		return err
	}
	t := newTable("Projects", "ID", "Name", "Client", "Status", "Team", "Period", "Skills")
	for _, p := range projects {
		t.add(p.ID, p.Name, p.Client, string(p.Status),
			fmt.Sprintf("%d/%d", p.AssignedMembers, p.RequiredMembers),
			strings.Trim(p.StartDate+" ~ "+p.EndDate, " ~"),
			joinOr(p.RequiredSkills, "-"))
	}
	e.out.Println(t.String())
	return nil
}
