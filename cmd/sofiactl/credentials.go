package main

import (
	"fmt"

	"github.com/aouiniamine/sofia-ops/internal/features/credentials/service"
	"github.com/aouiniamine/sofia-ops/internal/livekit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCredentialsCmd())
}

func newCredentialsCmd() *cobra.Command {
	var connect bool

	cmd := &cobra.Command{
		Use:   "check-credentials",
		Short: "Verify the LiveKit and Google credentials in the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cmd.SilenceUsage = true

			report, err := service.New(cfg, livekit.NewRoom, logger).Check(connect)

			out := cmd.OutOrStdout()
			for _, item := range report.Items {
				fmt.Fprintf(out, "%-20s %s\n", item.Name, item.Display)
			}
			if report.TokenVerified {
				fmt.Fprintln(out, "Token:               signed and verified")
			}
			if report.Connected {
				fmt.Fprintln(out, "Media server:        connected")
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&connect, "connect", false, "Also join a throwaway room on LIVEKIT_URL")

	return cmd
}
