package ports

import (
	"context"

	"github.com/bnema/iterrsa/internal/domain"
)

type ModelRepository interface {
	GetByName(ctx context.Context, name string) (domain.ModelDefinition, error)
	List(ctx context.Context) ([]domain.ModelDefinition, error)
	Save(ctx context.Context, model domain.ModelDefinition) error
}
