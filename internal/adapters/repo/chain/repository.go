package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/ports"
)

// Repository reads from primary and falls back to fallback. Writes only go to
// primary; models in primary shadow fallback models of the same name.
type Repository struct {
	primary  ports.ModelRepository
	fallback ports.ModelRepository
}

var _ ports.ModelRepository = (*Repository)(nil)

var (
	errNilPrimaryRepository  = errors.New("primary model repository is nil")
	errNilFallbackRepository = errors.New("fallback model repository is nil")
)

func NewRepository(primary ports.ModelRepository, fallback ports.ModelRepository) (*Repository, error) {
	if primary == nil {
		return nil, errNilPrimaryRepository
	}
	if fallback == nil {
		return nil, errNilFallbackRepository
	}

	return &Repository{primary: primary, fallback: fallback}, nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.ModelDefinition, error) {
	model, err := r.primary.GetByName(ctx, name)
	if err == nil {
		return model, nil
	}
	if shouldSkipFallback(err) {
		return domain.ModelDefinition{}, err
	}

	fallbackModel, fallbackErr := r.fallback.GetByName(ctx, name)
	if fallbackErr == nil {
		return fallbackModel, nil
	}

	return domain.ModelDefinition{}, fmt.Errorf("primary repository get failed: %w; fallback repository get failed: %w", err, fallbackErr)
}

func (r *Repository) List(ctx context.Context) ([]domain.ModelDefinition, error) {
	primaryModels, err := r.primary.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("primary repository list failed: %w", err)
	}

	fallbackModels, err := r.fallback.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fallback repository list failed: %w", err)
	}

	seen := make(map[string]struct{}, len(primaryModels))
	models := make([]domain.ModelDefinition, 0, len(primaryModels)+len(fallbackModels))
	for _, model := range primaryModels {
		seen[model.Name] = struct{}{}
		models = append(models, model)
	}
	for _, model := range fallbackModels {
		if _, ok := seen[model.Name]; ok {
			continue
		}
		models = append(models, model)
	}
	sort.SliceStable(models, func(i, j int) bool { return models[i].Name < models[j].Name })

	return models, nil
}

func (r *Repository) Save(ctx context.Context, model domain.ModelDefinition) error {
	if err := r.primary.Save(ctx, model); err != nil {
		return fmt.Errorf("primary repository save failed: %w", err)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
