package cmd

import (
	"context"

	"github.com/bnema/iterrsa/internal/adapters/render/view"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/bnema/iterrsa/internal/rsa"
	"github.com/spf13/cobra"
)

func newListenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Interpret a complete utterance",
	}

	cmd.AddCommand(
		newListenMaxCmd(app),
		newListenUttCmd(app),
	)

	return cmd
}

func newListenMaxCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "max NAME",
		Short: "Infer the most probable world after every word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := listenQuery(cmd, app, args[0])
			if err != nil {
				return err
			}

			var trace rsa.Trace
			err = runQuery(cmd, "Listening...", func(ctx context.Context) error {
				var queryErr error
				trace, queryErr = app.service.ListenMax(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, trace)
			}

			rendered, renderErr := view.RenderTrace(trace, renderOptions(cmd, app))
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addListenFlags(cmd)
	return cmd
}

func newListenUttCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utt NAME",
		Short: "Infer the posterior over worlds for the whole utterance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := listenQuery(cmd, app, args[0])
			if err != nil {
				return err
			}

			var posterior rsa.Posterior
			err = runQuery(cmd, "Listening...", func(ctx context.Context) error {
				var queryErr error
				posterior, queryErr = app.service.ListenUtterance(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, posterior)
			}

			rendered, renderErr := view.RenderPosterior(posterior, renderOptions(cmd, app))
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addListenFlags(cmd)
	return cmd
}

func listenQuery(cmd *cobra.Command, app *app, name string) (application.ListenQuery, error) {
	params, err := overrides(cmd, app)
	if err != nil {
		return application.ListenQuery{}, err
	}

	q := application.ListenQuery{Model: name, Overrides: params}
	q.Depth, _ = cmd.Flags().GetInt(flagDepth)
	q.Utterance, _ = cmd.Flags().GetString(flagUtterance)
	return q, nil
}

func addListenFlags(cmd *cobra.Command) {
	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagUtterance, "", "complete utterance without markers")
	cmd.Flags().Bool(flagLaTeX, false, "write a LaTeX tabular instead of a terminal table")
	_ = cmd.MarkFlagRequired(flagUtterance)
}
