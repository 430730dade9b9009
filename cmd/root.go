package cmd

import (
	"io"
	"log/slog"

	"github.com/bnema/iterrsa/internal/application"
	"github.com/spf13/cobra"
)

const (
	flagAlpha   = "alpha"
	flagEpsilon = "epsilon"
	flagJSON    = "json"
	flagVerbose = "verbose"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rsa",
		Short:         "Iterated Rational Speech Act reasoning",
		Long:          "rsa evaluates incremental Rational Speech Act listeners and speakers over named truth tables, generates and scores utterances, and renders reasoning trees and distribution tables.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64(flagAlpha, 0, "rationality parameter, overrides the model value")
	flags.Float64(flagEpsilon, 0, "probability floor, overrides the model value")
	flags.Bool(flagJSON, false, "write results as JSON")
	flags.BoolP(flagVerbose, "v", false, "log every listener and speaker evaluation to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool(flagVerbose)
		if err != nil {
			return err
		}
		app.service = application.NewService(app.repo, newLogger(cmd.ErrOrStderr(), verbose))
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newModelCmd(app),
		newListenerCmd(app),
		newSpeakerCmd(app),
		newSpeakCmd(app),
		newScoreCmd(app),
		newListenCmd(app),
		newTreeCmd(app),
		newTableCmd(app),
	)

	return rootCmd
}

func newLogger(output io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
