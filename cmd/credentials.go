package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type credentialsSetOptions struct {
	name  string
	value string
}

func newCredentialsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Store or remove the secrets the tutor uses",
		Long:  "Secrets live in pass when available and in a private file store otherwise. Names are namespaced, e.g. platform/password, platform/ws-token, openai/api-key.",
	}

	cmd.AddCommand(newCredentialsSetCmd(root), newCredentialsRemoveCmd(root))

	return cmd
}

func newCredentialsSetCmd(root *rootOptions) *cobra.Command {
	opts := &credentialsSetOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a secret",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			key, err := a.credentials.Set(cmd.Context(), opts.name, opts.value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "secret name, e.g. platform/password")
	cmd.Flags().StringVar(&opts.value, "value", "", "secret value")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newCredentialsRemoveCmd(root *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a stored secret",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			key, err := a.credentials.Remove(cmd.Context(), name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "secret name, e.g. platform/password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
