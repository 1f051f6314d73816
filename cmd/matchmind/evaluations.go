package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/forms"
	"matchmind/internal/views"
)

func (e *env) evaluationView() *views.Evaluation {
	return views.NewEvaluation(e.personnel(), e.evaluations(), e.client, e.cfg.ResumeMaxBytes)
}

func newEvaluationsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluations",
		Short: "Review submitted evaluations",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List evaluations, optionally filtered by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.evaluationView().LoadEvaluations(cmd.Context(), evaluation.Status(status))
			if err != nil {
				return err
			}
			return e.printEvaluations(items)
		},
	}
	list.Flags().StringVar(&status, "status", "", "pending, approved, review or rejected")

	approve := &cobra.Command{
		Use:   "approve <evaluation-id>",
		Short: "Approve a pending evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := e.loadedEvaluations(cmd.Context())
			if err != nil {
				return err
			}
			res, err := view.Approve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return e.printTransition(res)
		},
	}

	var comments string
	review := &cobra.Command{
		Use:   "review <evaluation-id>",
		Short: "Send an evaluation back for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := e.loadedEvaluations(cmd.Context())
			if err != nil {
				return err
			}
			modal := view.ReviewModal(args[0])
			modal.Update(func(r forms.Review) forms.Review {
				r.Comments = comments
				return r
			})
			if err := modal.Submit(cmd.Context()); err != nil {
				return err
			}
			return e.printEvaluations(view.State().Evaluations)
		},
	}
	review.Flags().StringVar(&comments, "comments", "", "review comments (required)")

	var reason string
	reject := &cobra.Command{
		Use:   "reject <evaluation-id>",
		Short: "Reject an evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := e.loadedEvaluations(cmd.Context())
			if err != nil {
				return err
			}
			modal := view.RejectModal(args[0])
			modal.Update(func(r forms.Reject) forms.Reject {
				r.Reason = reason
				return r
			})
			if err := modal.Submit(cmd.Context()); err != nil {
				return err
			}
			return e.printEvaluations(view.State().Evaluations)
		},
	}
	reject.Flags().StringVar(&reason, "reason", "", "rejection reason (required)")

	cmd.AddCommand(list, approve, review, reject)
	return cmd
}

// loadedEvaluations loads the full list first so closed evaluations are refused locally.
func (e *env) loadedEvaluations(ctx context.Context) (*views.Evaluation, error) {
	view := e.evaluationView()
	if _, err := view.LoadEvaluations(ctx, ""); err != nil {
		return nil, err
	}
	return view, nil
}

func (e *env) printEvaluations(items []evaluation.Evaluation) error {
	if ok, err := e.emit(items); ok {
		return err
	}
	t := newTable("Evaluations", "ID", "Employee", "Type", "Status", "Score", "Submitted", "Note")
	for _, ev := range items {
		note := ev.ReviewComments
		if ev.RejectionReason != "" {
			note = ev.RejectionReason
		}
		t.add(ev.EvaluationID, ev.Name, string(ev.Type), statusText(ev.Status), score(ev.OverallScore), ev.SubmittedAt, note)
	}
	e.out.Println(t.String())
	return nil
}

func (e *env) printTransition(res evaluation.TransitionResult) error {
	if ok, err := e.emit(res); ok {
		return err
	}
	msg := res.Message
	if msg == "" {
		msg = fmt.Sprintf("evaluation %s is now %s", res.Evaluation.EvaluationID, res.Evaluation.Status)
	}
	e.out.Println(successStyle.Render(msg))
	return nil
}

func statusText(s evaluation.Status) string {
	switch s {
	case evaluation.StatusApproved:
		return successStyle.Render(string(s))
	case evaluation.StatusRejected:
		return errorStyle.Render(string(s))
	default:
		return warnStyle.Render(string(s))
	}
}

func newEvaluateCmd(e *env) *cobra.Command {
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "evaluate <employee-name-or-id>",
		Short: "Run an on-demand evaluation for one employee",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			view := e.evaluationView()
			found, err := view.SearchEmployees(cmd.Context(), query)
			if err != nil {
				return err
			}

			var target personnel.Employee
			switch len(found) {
			case 0:
				target = personnel.Employee{UserID: query}
			case 1:
				target = found[0]
			default:
				t := newTable("Matching employees", "ID", "Name", "Role")
				for _, emp := range found {
					t.add(emp.Identifier(), emp.DisplayName(), emp.BasicInfo.Role)
				}
				e.out.Println(t.String())
				return fmt.Errorf("%d employees match %q; pass an id", len(found), query)
			}

			result, err := view.Evaluate(cmd.Context(), target)
			if err != nil {
				return err
			}
			if pdfPath != "" {
				reporter, err := evaluation.NewReporter(e.cfg.ReportFont)
				if err != nil {
					return err
				}
				data, err := reporter.Render(result)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}
			if ok, err := e.emit(result); ok {
				return err
			}
			e.printResult(result)
			if pdfPath != "" {
				e.out.Println(mutedStyle.Render("Report written to " + pdfPath))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the evaluation as a PDF report (REPORT_FONT sets the font)")
	return cmd
}

func (e *env) printResult(r evaluation.EmployeeResult) {
	t := newTable(fmt.Sprintf("Evaluation of %s (%s)", r.EmployeeName, r.EmployeeID), "Area", "Score")
	t.add("Technical skills", score(r.Scores.TechnicalSkills))
	t.add("Project experience", score(r.Scores.ProjectExperience))
	t.add("Resume credibility", score(r.Scores.ResumeCredibility))
	t.add("Cultural fit", score(r.Scores.CulturalFit))
	t.add("Overall", score(r.OverallScore)+" "+string(evaluation.GradeFor(r.OverallScore)))
	e.out.Println(t.String())
	e.out.Printf("Strengths: %s\n", joinOr(r.Strengths, "-"))
	e.out.Printf("Weaknesses: %s\n", joinOr(r.Weaknesses, "-"))
	if r.AIRecommendation != "" {
		e.out.Printf("Recommendation: %s\n", r.AIRecommendation)
	}
}

func newResumeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume intake",
	}
	upload := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF resume for analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := e.evaluationView()
			if err := view.Upload.SelectPath(args[0]); err != nil {
				return err
			}
			uploaded, err := view.Upload.Upload(cmd.Context())
			if err != nil {
				return err
			}
			if ok, err := e.emit(uploaded); ok {
				return err
			}
			e.out.Println(successStyle.Render(fmt.Sprintf("Uploaded %s (%d bytes)", uploaded.FileName, uploaded.Size)))
			e.out.Println(mutedStyle.Render("file key: " + uploaded.FileKey))
			return nil
		},
	}
	cmd.AddCommand(upload)
	return cmd
}

func newAnalysisCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Per-employee quantitative and qualitative analysis",
	}
	quantitative := &cobra.Command{
		Use:   "quantitative <employee-id>",
		Short: "Experience, tech-stack and project scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := e.analysis().Quantitative(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ok, err := e.emit(q); ok {
				return err
			}
			t := newTable("Quantitative analysis of "+q.Name, "Metric", "Value")
			t.add("Years of experience", score(q.ExperienceMetrics.YearsOfExperience))
			t.add("Projects", itoa(q.ExperienceMetrics.ProjectCount))
			t.add("Skill diversity", itoa(q.ExperienceMetrics.SkillDiversity))
			t.add("Experience score", score(q.ExperienceMetrics.ExperienceScore))
			t.add("Tech stack score", score(q.TechEvaluation.TechStackScore))
			t.add("Project experience score", score(q.ProjectScores.ProjectExperienceScore))
			t.add("Overall", score(q.OverallScore))
			e.out.Println(t.String())

			skills := newTable("Skills", "Skill", "Trend", "Demand")
			for _, s := range q.TechEvaluation.SkillEvaluations {
				skills.add(s.SkillName, score(s.TrendScore), score(s.DemandScore))
			}
			e.out.Println(skills.String())
			return nil
		},
	}
	qualitative := &cobra.Command{
		Use:   "qualitative <employee-id>",
		Short: "Strengths, weaknesses and resume red flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := e.analysis().Qualitative(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ok, err := e.emit(q); ok {
				return err
			}
			e.out.Println(titleStyle.Render("Qualitative analysis of " + q.Name))
			e.out.Println(q.OverallAssessment)
			flags := newTable("Flags", "Type", "Severity", "Description")
			for _, f := range q.SuspiciousFlags {
				flags.add(f.Type, f.Severity, f.Description)
			}
			e.out.Println(flags.String())
			return nil
		},
	}
	cmd.AddCommand(quantitative, qualitative)
	return cmd
}
