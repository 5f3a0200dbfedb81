package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/features/probe/client"
	"github.com/aouiniamine/sofia-ops/internal/features/probe/service"
	"github.com/aouiniamine/sofia-ops/internal/livekit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	var (
		api  string
		opts service.Options
	)

	cmd := &cobra.Command{
		Use:   "probe-room",
		Short: "Join a room as a test client and watch who else is there",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if api == "" {
				api = cfg.Connect.APIURL
			}
			cmd.SilenceUsage = true

			probe := service.New(client.New(api), livekit.NewRoom, logger)
			report, err := probe.Run(cmd.Context(), opts)
			if report != nil {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Room:         %s\n", report.Room)
				fmt.Fprintf(out, "Local:        %s\n", report.LocalIdentity)
				fmt.Fprintf(out, "Initial:      %s\n", formatIdentities(report.Initial))
				for i, remote := range report.Checks {
					fmt.Fprintf(out, "Check %-2d:     %s\n", i+1, formatIdentities(remote))
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&api, "api", "", "Connect API URL (default CONNECT_API_URL)")
	cmd.Flags().StringVar(&opts.Participant, "participant", "Test-Client", "Participant name to request a token for")
	cmd.Flags().StringVar(&opts.Room, "room", "dental-calendar", "Room to join")
	cmd.Flags().IntVar(&opts.Checks, "checks", 10, "Number of participant checks")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 2*time.Second, "Time between checks")

	return cmd
}

func formatIdentities(identities []string) string {
	if len(identities) == 0 {
		return "(none)"
	}
	return strings.Join(identities, ", ")
}
