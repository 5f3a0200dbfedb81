package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aouiniamine/sofia-ops/internal/features/appointment/service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWipeCmd())
}

func newWipeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe-appointments",
		Short: "Delete every appointment from the configured databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "This deletes ALL appointments from:")
			for _, path := range cfg.Database.Paths {
				fmt.Fprintf(out, "  - %s\n", path)
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), out)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			cmd.SilenceUsage = true

			results := service.NewWipeService(cfg.Database.Paths, logger).Wipe(cmd.Context())

			var failed int
			for _, r := range results {
				switch {
				case r.Err != nil && r.Found:
					failed++
					fmt.Fprintf(out, "%s: error: %v\n", r.Path, r.Err)
				case r.Err != nil:
					failed++
					fmt.Fprintf(out, "%s: skipped: %v\n", r.Path, r.Err)
				case !r.Found:
					fmt.Fprintf(out, "%s: not found\n", r.Path)
				default:
					fmt.Fprintf(out, "%s: %d before, %d deleted, %d after\n", r.Path, r.Before, r.Deleted, r.After)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d database(s) could not be wiped", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Continue? (ja/nein): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return Confirmed(line), nil
}

// Confirmed reports whether answer is one of ja, j, yes or y in any case.
func Confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "ja", "j", "yes", "y":
		return true
	}
	return false
}
