package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matchmind/internal/app/server"
)

func newServeCmd(e *env) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the console server (API proxy and static frontend)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.cfg
			if addr != "" {
				cfg.Addr = addr
			}
			zap.ReplaceGlobals(e.log)
			app, err := server.New(cfg, e.log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_ADDR)")
	return cmd
}
