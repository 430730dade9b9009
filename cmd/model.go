package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/iterrsa/internal/adapters/importer"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/spf13/cobra"
)

func newModelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage truth table models",
	}

	cmd.AddCommand(
		newModelListCmd(app),
		newModelShowCmd(app),
		newModelImportCmd(app),
	)

	return cmd
}

func newModelListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.service.ListModels(cmd.Context())
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, summaries)
			}

			for _, summary := range summaries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d worlds\t%d utterances\t%s\n",
					summary.Name, len(summary.Worlds), len(summary.Utterances), summary.Description)
			}

			return nil
		},
	}
}

func newModelShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show worlds, vocabulary and parameters of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.service.DescribeModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, summary)
			}

			return writeModelSummary(cmd, summary)
		},
	}
}

func newModelImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE|GLOB...",
		Short: "Import model definitions from TOML or YAML files",
		Long:  "Import model definitions from .toml, .yaml or .yml files. Arguments may be glob patterns such as models/**/*.yaml. Models replace stored models of the same name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := importer.LoadFiles(args)
			if err != nil {
				return err
			}

			if err := app.service.ImportModels(cmd.Context(), defs); err != nil {
				return err
			}

			for _, def := range defs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d entries)\n", def.Name, len(def.Entries))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved to %s\n", app.modelsPath)
			return err
		},
	}
}

func writeModelSummary(cmd *cobra.Command, summary application.ModelSummary) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "name: %s\n", summary.Name)
	if summary.Description != "" {
		_, _ = fmt.Fprintf(out, "description: %s\n", summary.Description)
	}
	_, _ = fmt.Fprintf(out, "alpha: %g\n", summary.Params.Alpha)
	_, _ = fmt.Fprintf(out, "epsilon: %g\n", summary.Params.Epsilon)
	_, _ = fmt.Fprintf(out, "worlds: %s\n", strings.Join(summary.Worlds, ", "))
	_, _ = fmt.Fprintf(out, "words: %s\n", strings.Join(summary.Words, ", "))
	_, _ = fmt.Fprintln(out, "utterances:")
	for _, utterance := range summary.Utterances {
		_, _ = fmt.Fprintf(out, "  %s\n", utterance)
	}

	return nil
}
