package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the Telegram bot token secret",
	}

	cmd.AddCommand(newTokenSetCmd(app), newTokenRemoveCmd(app))
	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	var value, ref string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the bot token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := tokenRef(app, ref)
			if err := app.secretStore.Put(cmd.Context(), target, value); err != nil {
				return fmt.Errorf("store bot token: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bot token stored at %s\n", target)
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "bot token from @BotFather")
	cmd.Flags().StringVar(&ref, "ref", "", "secret ref (default telegram.token_ref)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newTokenRemoveCmd(app *app) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored bot token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := tokenRef(app, ref)
			if err := app.secretStore.Delete(cmd.Context(), target); err != nil {
				return fmt.Errorf("remove bot token: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bot token removed from %s\n", target)
			return err
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "secret ref (default telegram.token_ref)")

	return cmd
}

func tokenRef(app *app, override string) string {
	if override != "" {
		return override
	}
	return app.cfg.Telegram.TokenRef
}
