package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matchmind/internal/backend"
	"matchmind/internal/domain/analysis"
	"matchmind/internal/domain/dashboard"
	"matchmind/internal/domain/evaluation"
	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
	"matchmind/internal/domain/recommendation"
	"matchmind/internal/platform/config"
	"matchmind/internal/platform/logging"
)

// env is the state shared by every subcommand once setup has run.
type env struct {
	configPath string
	jsonOut    bool

	cfg    config.Config
	log    *zap.Logger
	client *backend.Client
	out    *printer
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "matchmind",
		Short:         "Personnel matching console",
		Long:          "matchmind browses employees and projects, shows AI recommendations and domain analysis, and manages evaluations through the matching backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", "", "YAML config file layered over the environment")
	root.PersistentFlags().BoolVar(&e.jsonOut, "json", false, "print raw JSON instead of tables")

	root.AddCommand(
		newServeCmd(e),
		newDashboardCmd(e),
		newEmployeesCmd(e),
		newProjectsCmd(e),
		newRecommendCmd(e),
		newAssignCmd(e),
		newDomainsCmd(e),
		newEvaluationsCmd(e),
		newEvaluateCmd(e),
		newResumeCmd(e),
		newAnalysisCmd(e),
		newTokenCmd(e),
	)
	return root
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(e.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger
	e.out = newPrinter(cmd.OutOrStdout())
	e.client = backend.New(backend.Options{
		BaseURL: cfg.BackendBaseURL,
		APIKey:  cfg.BackendAPIKey,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
	})
	return nil
}

func (e *env) personnel() *personnel.Service { return personnel.NewService(e.client) }

func (e *env) projects() *project.Service { return project.NewService(e.client) }

func (e *env) recommendations() *recommendation.Service {
	return recommendation.NewService(e.client)
}

func (e *env) analysis() *analysis.Service { return analysis.NewService(e.client) }

func (e *env) evaluations() *evaluation.Service { return evaluation.NewService(e.client) }

func (e *env) dashboard() *dashboard.Service { return dashboard.NewService(e.client) }

// emit prints v as indented JSON when --json is set and reports whether it did.
func (e *env) emit(v any) (bool, error) {
	if !e.jsonOut {
		return false, nil
	}
	return true, writeJSON(e.out, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
