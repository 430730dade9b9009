package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/iterrsa/internal/adapters/render/view"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/spf13/cobra"
)

const (
	flagDepth     = "depth"
	flagPrefix    = "prefix"
	flagWord      = "word"
	flagWorld     = "world"
	flagUtterance = "utterance"
	flagLaTeX     = "latex"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func jsonRequested(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool(flagJSON)
	return asJSON
}

// overrides resolves --alpha/--epsilon against the configured defaults.
func overrides(cmd *cobra.Command, app *app) (application.ParamOverrides, error) {
	out := app.defaults

	if cmd.Flags().Changed(flagAlpha) {
		alpha, err := cmd.Flags().GetFloat64(flagAlpha)
		if err != nil {
			return application.ParamOverrides{}, err
		}
		out.Alpha = alpha
	}
	if cmd.Flags().Changed(flagEpsilon) {
		epsilon, err := cmd.Flags().GetFloat64(flagEpsilon)
		if err != nil {
			return application.ParamOverrides{}, err
		}
		out.Epsilon = epsilon
	}

	return out, nil
}

func renderOptions(cmd *cobra.Command, app *app) view.RenderOptions {
	opts := app.render
	if latex, _ := cmd.Flags().GetBool(flagLaTeX); latex {
		opts.Format = view.FormatLaTeX
	}
	return opts
}

func formatProb(app *app, p float64) string {
	return fmt.Sprintf("%.*f", app.render.Precision, p)
}

func addDepthFlag(cmd *cobra.Command, fallback int) {
	cmd.Flags().IntP(flagDepth, "n", fallback, "recursion depth")
}
