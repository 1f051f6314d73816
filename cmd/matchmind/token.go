package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"matchmind/internal/domain/auth"
)

const defaultTokenTTL = 8 * time.Hour

func newTokenCmd(e *env) *cobra.Command {
	var (
		operator string
		role     string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a console bearer token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set; the console server runs without auth")
			}
			if operator == "" {
				return errors.New("--operator is required")
			}
			switch role {
			case auth.RoleViewer, auth.RoleManager, auth.RoleAdmin:
			default:
				return fmt.Errorf("unknown role %q", role)
			}
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}
			token, err := auth.GenerateToken(e.cfg.JWTSecret, auth.Claims{Operator: operator, Role: role}, ttl)
			if err != nil {
				return err
			}
			e.out.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&operator, "operator", "", "operator name recorded in the token")
	cmd.Flags().StringVar(&role, "role", auth.RoleViewer, "viewer, manager or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	return cmd
}
