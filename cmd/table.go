package cmd

import (
	"context"

	"github.com/bnema/iterrsa/internal/adapters/render/view"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/spf13/cobra"
)

func newTableCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate listener or speaker distributions after a prefix",
	}

	cmd.AddCommand(
		newDistributionTableCmd(app, "listener", "One row per next word, one column per world", (*application.Service).ListenerTable),
		newDistributionTableCmd(app, "speaker", "One row per world, one column per next word", (*application.Service).SpeakerTable),
	)

	return cmd
}

func newDistributionTableCmd(
	app *app,
	use string,
	short string,
	tabulate func(*application.Service, context.Context, application.TableQuery) (application.DistributionTable, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.TableQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.Prefix, _ = cmd.Flags().GetString(flagPrefix)

			var table application.DistributionTable
			err = runQuery(cmd, "Tabulating...", func(ctx context.Context) error {
				var queryErr error
				table, queryErr = tabulate(app.service, ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, table)
			}

			rendered, renderErr := view.RenderTable(table, renderOptions(cmd, app))
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagPrefix, "", "words already heard, the start marker is implied")
	cmd.Flags().Bool(flagLaTeX, false, "write a LaTeX tabular instead of a terminal table")

	return cmd
}
