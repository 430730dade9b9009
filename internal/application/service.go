package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/ports"
	"github.com/bnema/iterrsa/internal/rsa"
)

var ErrNoModels = errors.New("no model definitions given")

type Service struct {
	repo   ports.ModelRepository
	logger *slog.Logger
}

func NewService(repo ports.ModelRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListModels(ctx context.Context) ([]ModelSummary, error) {
	defs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	summaries := make([]ModelSummary, 0, len(defs))
	for _, def := range defs {
		summary, err := summarize(def)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *Service) DescribeModel(ctx context.Context, name string) (ModelSummary, error) {
	def, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return ModelSummary{}, fmt.Errorf("get model %q: %w", name, err)
	}

	return summarize(def)
}

// ImportModels validates every definition before saving any of them.
func (s *Service) ImportModels(ctx context.Context, defs []domain.ModelDefinition) error {
	if len(defs) == 0 {
		return ErrNoModels
	}

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("validate model %q: %w", def.Name, err)
		}
		if _, err := rsa.NewTable(def.Entries, def.Params); err != nil {
			return fmt.Errorf("validate model %q: %w", def.Name, err)
		}
	}

	for _, def := range defs {
		if err := s.repo.Save(ctx, def); err != nil {
			return fmt.Errorf("save model %q: %w", def.Name, err)
		}
		s.logger.Info("imported model", slog.String("model", def.Name), slog.Int("entries", len(def.Entries)))
	}

	return nil
}

func (s *Service) Listener(ctx context.Context, q ListenerQuery) (ListenerResult, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return ListenerResult{}, err
	}

	dist, err := model.Listener(q.Depth, q.Prefix, q.Word)
	if err != nil {
		return ListenerResult{}, err
	}

	result := ListenerResult{
		Model:        q.Model,
		Depth:        q.Depth,
		Prefix:       domain.ParsePrefix(q.Prefix).String(),
		Word:         q.Word,
		Distribution: dist,
	}
	if q.World != "" {
		p, ok := dist.Prob(q.World)
		if !ok {
			return ListenerResult{}, fmt.Errorf("%q: %w", q.World, domain.ErrInvalidWorld)
		}
		result.World = q.World
		result.Prob = &p
	}

	return result, nil
}

func (s *Service) Speaker(ctx context.Context, q SpeakerQuery) (SpeakerResult, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return SpeakerResult{}, err
	}

	dist, err := model.Speaker(q.Depth, q.Prefix, q.World)
	if err != nil {
		return SpeakerResult{}, err
	}

	result := SpeakerResult{
		Model:        q.Model,
		Depth:        q.Depth,
		Prefix:       domain.ParsePrefix(q.Prefix).String(),
		World:        q.World,
		Distribution: dist,
	}
	if q.Word != "" {
		p, ok := dist.Prob(q.Word)
		if !ok {
			return SpeakerResult{}, fmt.Errorf("%q: %w", q.Word, domain.ErrInvalidWord)
		}
		result.Word = q.Word
		result.Prob = &p
	}

	return result, nil
}

func (s *Service) Speak(ctx context.Context, q SpeakQuery) (rsa.Generation, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return rsa.Generation{}, err
	}

	return model.Speak(q.Depth, q.World)
}

func (s *Service) Score(ctx context.Context, q ScoreQuery) (ScoreResult, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return ScoreResult{}, err
	}

	prob, err := model.Score(q.Depth, q.World, q.Utterance)
	if err != nil {
		return ScoreResult{}, err
	}

	return ScoreResult{
		Model:     q.Model,
		Depth:     q.Depth,
		World:     q.World,
		Utterance: domain.ParseComplete(q.Utterance).String(),
		Prob:      prob,
	}, nil
}

func (s *Service) ListenMax(ctx context.Context, q ListenQuery) (rsa.Trace, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return rsa.Trace{}, err
	}

	return model.ListenMax(q.Depth, q.Utterance)
}

func (s *Service) ListenUtterance(ctx context.Context, q ListenQuery) (rsa.Posterior, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return rsa.Posterior{}, err
	}

	return model.ListenUtterance(q.Depth, q.Utterance)
}

func (s *Service) SpeakerTree(ctx context.Context, q SpeakQuery) (*domain.ReasoningTree, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return nil, err
	}

	return model.SpeakerTree(q.Depth, q.World)
}

// ListenerTable evaluates L_n(w | prefix, wd) for every word that validly
// extends prefix.
func (s *Service) ListenerTable(ctx context.Context, q TableQuery) (DistributionTable, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return DistributionTable{}, err
	}

	table := model.Table()
	prefix := domain.ParsePrefix(q.Prefix)
	out := DistributionTable{
		Kind:    TableListener,
		Model:   q.Model,
		Depth:   q.Depth,
		Prefix:  prefix.String(),
		Columns: table.Worlds(),
	}
	for _, word := range table.Words() {
		if !table.Valid(prefix.Extend(word).String()) {
			continue
		}
		dist, err := model.Listener(q.Depth, prefix.String(), word)
		if err != nil {
			return DistributionTable{}, err
		}
		out.Rows = append(out.Rows, TableRow{Label: word, Distribution: dist})
	}
	if len(out.Rows) == 0 {
		return DistributionTable{}, fmt.Errorf("%q has no valid continuation: %w", prefix.String(), domain.ErrInvalidPrefix)
	}

	return out, nil
}

// SpeakerTable evaluates S_n(wd | prefix, w) for every world.
func (s *Service) SpeakerTable(ctx context.Context, q TableQuery) (DistributionTable, error) {
	model, err := s.loadModel(ctx, q.Model, q.Overrides)
	if err != nil {
		return DistributionTable{}, err
	}

	table := model.Table()
	prefix := domain.ParsePrefix(q.Prefix)
	out := DistributionTable{
		Kind:    TableSpeaker,
		Model:   q.Model,
		Depth:   q.Depth,
		Prefix:  prefix.String(),
		Columns: table.Words(),
	}
	for _, world := range table.Worlds() {
		dist, err := model.Speaker(q.Depth, prefix.String(), world)
		if err != nil {
			return DistributionTable{}, err
		}
		out.Rows = append(out.Rows, TableRow{Label: world, Distribution: dist})
	}

	return out, nil
}

func (s *Service) loadModel(ctx context.Context, name string, overrides ParamOverrides) (*rsa.Model, error) {
	def, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get model %q: %w", name, err)
	}

	params := overrides.apply(def.Params)
	model, err := rsa.New(def.Entries, params,
		rsa.WithLogger(s.logger.With(slog.String("model", name))),
		rsa.WithMemo(),
	)
	if err != nil {
		return nil, fmt.Errorf("build model %q: %w", name, err)
	}

	return model, nil
}

func summarize(def domain.ModelDefinition) (ModelSummary, error) {
	table, err := rsa.NewTable(def.Entries, def.Params)
	if err != nil {
		return ModelSummary{}, fmt.Errorf("build model %q: %w", def.Name, err)
	}

	return ModelSummary{
		Name:        def.Name,
		Description: def.Description,
		Params:      table.Params(),
		Worlds:      table.Worlds(),
		Words:       table.Words(),
		Utterances:  table.Utterances(),
	}, nil
}
