// Package builtin serves the demonstration models that ship with the CLI.
package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/ports"
)

var ErrReadOnly = errors.New("builtin models are read-only")

type Repository struct {
	models []domain.ModelDefinition
}

var _ ports.ModelRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{models: Models()}
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.ModelDefinition, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelDefinition{}, err
	}

	for _, model := range r.models {
		if model.Name == name {
			return model, nil
		}
	}

	return domain.ModelDefinition{}, fmt.Errorf("%q: %w", name, domain.ErrModelNotFound)
}

func (r *Repository) List(ctx context.Context) ([]domain.ModelDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]domain.ModelDefinition(nil), r.models...), nil
}

func (r *Repository) Save(context.Context, domain.ModelDefinition) error {
	return ErrReadOnly
}
