package main

import (
	"errors"
	"fmt"

	"github.com/aouiniamine/sofia-ops/internal/features/webhook/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(newTriggerCmd())
}

func newTriggerCmd() *cobra.Command {
	var (
		url  string
		room string
	)

	cmd := &cobra.Command{
		Use:   "trigger-room",
		Short: "Send a room_started webhook so the agent joins a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if url == "" {
				url = cfg.Agent.WebhookURL
			}
			cmd.SilenceUsage = true

			logger.Info("sending room_started webhook", zap.String("url", url), zap.String("room", room))

			event, err := service.NewWebhookSender(url).TriggerRoomStarted(cmd.Context(), room)
			if err != nil {
				if errors.Is(err, service.ErrAgentUnreachable) {
					return fmt.Errorf("%w\nis the agent running? start it and retry", err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Agent notified: room %s (%s, event %s)\n", event.Room.Name, event.Room.SID, event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Agent webhook URL (default AGENT_WEBHOOK_URL)")
	cmd.Flags().StringVar(&room, "room", "sofia-room", "Room name to announce")

	return cmd
}
