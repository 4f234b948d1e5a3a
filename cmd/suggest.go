package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/course-tutor/internal/domain"
)

func newSuggestCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prompt>",
		Short: "Ask for course suggestions from the local index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := wireResolvedApp(ctx, root.configFile, cmd.ErrOrStderr())
			if err != nil {
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
				return err
			}

			message, err := suggestions.Suggest(ctx, strings.Join(args, " "))
			if errors.Is(err, domain.ErrIndexNotReady) {
				return fmt.Errorf("%w: run `tutor index sync` first", err)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}
}
