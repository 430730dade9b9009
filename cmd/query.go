package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/iterrsa/internal/adapters/render/view"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/rsa"
	"github.com/spf13/cobra"
)

func newListenerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listener NAME",
		Short: "Evaluate the listener distribution over worlds for one word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.ListenerQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.Prefix, _ = cmd.Flags().GetString(flagPrefix)
			q.Word, _ = cmd.Flags().GetString(flagWord)
			q.World, _ = cmd.Flags().GetString(flagWorld)

			var result application.ListenerResult
			err = runQuery(cmd, "Reasoning...", func(ctx context.Context) error {
				var queryErr error
				result, queryErr = app.service.Listener(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, result)
			}
			if result.Prob != nil {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "L%d(w=%s | c=%s, wd=%s) = %s\n",
					result.Depth, result.World, result.Prefix, result.Word, formatProb(app, *result.Prob))
				return err
			}

			title := fmt.Sprintf("L%d(w=* | c=%s, wd=%s)", result.Depth, result.Prefix, result.Word)
			rendered, renderErr := view.RenderDistribution(title, result.Distribution, app.render)
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagPrefix, "", "words already heard, the start marker is implied")
	cmd.Flags().String(flagWord, "", "next word heard")
	cmd.Flags().String(flagWorld, "", "report the probability of a single world")
	_ = cmd.MarkFlagRequired(flagWord)

	return cmd
}

func newSpeakerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speaker NAME",
		Short: "Evaluate the speaker distribution over next words for one world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.SpeakerQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.Prefix, _ = cmd.Flags().GetString(flagPrefix)
			q.World, _ = cmd.Flags().GetString(flagWorld)
			q.Word, _ = cmd.Flags().GetString(flagWord)

			var result application.SpeakerResult
			err = runQuery(cmd, "Reasoning...", func(ctx context.Context) error {
				var queryErr error
				result, queryErr = app.service.Speaker(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, result)
			}
			if result.Prob != nil {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "S%d(wd=%s | c=%s, w=%s) = %s\n",
					result.Depth, result.Word, result.Prefix, result.World, formatProb(app, *result.Prob))
				return err
			}

			title := fmt.Sprintf("S%d(wd=* | c=%s, w=%s)", result.Depth, result.Prefix, result.World)
			rendered, renderErr := view.RenderDistribution(title, result.Distribution, app.render)
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagPrefix, "", "words already spoken, the start marker is implied")
	cmd.Flags().String(flagWorld, "", "world the speaker describes")
	cmd.Flags().String(flagWord, "", "report the probability of a single word")
	_ = cmd.MarkFlagRequired(flagWorld)

	return cmd
}

func newSpeakCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak NAME",
		Short: "Greedily generate the most probable utterance for a world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.SpeakQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.World, _ = cmd.Flags().GetString(flagWorld)

			var generation rsa.Generation
			err = runQuery(cmd, "Generating...", func(ctx context.Context) error {
				var queryErr error
				generation, queryErr = app.service.Speak(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, generation)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", generation.Utterance, formatProb(app, generation.Prob))
			return err
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagWorld, "", "world the speaker describes")
	_ = cmd.MarkFlagRequired(flagWorld)

	return cmd
}

func newScoreCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score NAME",
		Short: "Probability that the speaker produces a complete utterance for a world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.ScoreQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.World, _ = cmd.Flags().GetString(flagWorld)
			q.Utterance, _ = cmd.Flags().GetString(flagUtterance)

			var result application.ScoreResult
			err = runQuery(cmd, "Scoring...", func(ctx context.Context) error {
				var queryErr error
				result, queryErr = app.service.Score(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, result)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "S%d(%s | w=%s) = %s\n",
				result.Depth, result.Utterance, result.World, formatProb(app, result.Prob))
			return err
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagWorld, "", "world the speaker describes")
	cmd.Flags().String(flagUtterance, "", "complete utterance without markers")
	_ = cmd.MarkFlagRequired(flagWorld)
	_ = cmd.MarkFlagRequired(flagUtterance)

	return cmd
}

func newTreeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree NAME",
		Short: "Draw every utterance the speaker can produce for a world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := overrides(cmd, app)
			if err != nil {
				return err
			}

			q := application.SpeakQuery{Model: args[0], Overrides: params}
			q.Depth, _ = cmd.Flags().GetInt(flagDepth)
			q.World, _ = cmd.Flags().GetString(flagWorld)

			var tree *domain.ReasoningTree
			err = runQuery(cmd, "Expanding...", func(ctx context.Context) error {
				var queryErr error
				tree, queryErr = app.service.SpeakerTree(ctx, q)
				return queryErr
			})
			if err != nil {
				return err
			}

			if jsonRequested(cmd) {
				return writeJSON(cmd, tree.Edges())
			}

			rendered, renderErr := view.RenderTree(tree, app.render)
			return writeRendered(cmd, rendered, renderErr)
		},
	}

	addDepthFlag(cmd, 1)
	cmd.Flags().String(flagWorld, "", "world the speaker describes")
	_ = cmd.MarkFlagRequired(flagWorld)

	return cmd
}
