package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the merged configuration (defaults, file, environment) as YAML",
			RunE: func(cmd *cobra.Command, _ []string) error {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(app.cfg); err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				return enc.Close()
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration directory",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), app.cfg.Dir)
				return err
			},
		},
	)

	return cmd
}
