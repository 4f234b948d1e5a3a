package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type askOptions struct {
	noSpinner bool
}

func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the tutor a question from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := wireResolvedApp(ctx, root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			tutor, err := a.tutor()
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			var answer string
			answerFn := func(ctx context.Context) error {
				answer = tutor.Answer(ctx, question)
				return nil
			}

			if opts.noSpinner {
				err = answerFn(ctx)
			} else {
				err = runSpinner(ctx, cmd.ErrOrStderr(), "Consultando a plataforma...", answerFn)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "do not animate while waiting")

	return cmd
}
