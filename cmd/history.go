package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	historyadapter "github.com/bnema/grindbot/internal/adapters/render/history"
	"github.com/bnema/grindbot/internal/application"
	"github.com/bnema/grindbot/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived grind sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			archive, closeArchive, err := app.openArchive()
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, closeArchive())
			}()
			if archive == nil {
				return errArchiveDisabled
			}

			svc := application.NewArchiveService(archive)
			records, err := svc.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if records == nil {
				records = []domain.SessionRecord{}
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(records); err != nil {
					return err
				}
				return enc.Close()
			case "table":
				totals := svc.Totals(records)
				rendered, err := historyadapter.Render(records, historyadapter.RenderOptions{
					Now:    app.now(),
					Totals: &totals,
				})
				if err != nil {
					return fmt.Errorf("render history: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			default:
				return fmt.Errorf("unsupported --format %q (table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of sessions to show (0 for all)")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or yaml")

	return cmd
}
