package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "grindbot",
		Short:         "grindbot: auto-grind a game session from Telegram",
		Long:          "grindbot runs a grind loop (explore, battle, collect rewards) controlled by a single Telegram operator, with a local console mode and an archive of finished sessions.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return wireApp(app, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default $HOME/.config/grindbot/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newConsoleCmd(app),
		newHistoryCmd(app),
		newTokenCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
