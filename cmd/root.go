package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "tutor",
		Short:         "Course tutor: answer questions about an online course platform",
		Long:          "tutor logs into a Moodle-style course platform, reads its catalog and course summaries, and answers student questions through a language model. It serves the HTTP API and offers the same answers from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to config.toml (default: user config dir)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newAskCmd(opts),
		newCoursesCmd(opts),
		newSuggestCmd(opts),
		newIndexCmd(opts),
		newCredentialsCmd(opts),
	)

	return rootCmd
}
