package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newIndexCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the course suggestion index",
	}

	cmd.AddCommand(newIndexSyncCmd(root))

	return cmd
}

func newIndexSyncCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rebuild the suggestion index from the platform's course list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := wireResolvedApp(ctx, root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := a.cfg.RequireWebService(); err != nil {
				return err
			}

			suggestions, closeIndex, err := a.suggestions()
			if err != nil {
				return err
			}
			defer func() {
				if err := closeIndex(); err != nil {
					a.logger.Warn("close course index", slog.Any("error", err))
				}
			}()

			if err := suggestions.Load(ctx); err != nil {
				a.logger.Warn("previous course index not restored", slog.Any("error", err))
			}

			swapped, err := suggestions.Refresh(ctx)
			if err != nil {
				return err
			}

			snapshot, _ := suggestions.Snapshot()
			if !swapped {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "index unchanged: generation %d, %d courses\n", snapshot.Generation, len(snapshot.Courses))
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "index rebuilt: generation %d, %d courses\n", snapshot.Generation, len(snapshot.Courses))
			return err
		},
	}
}
