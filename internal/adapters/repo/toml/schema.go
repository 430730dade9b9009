package toml

import (
	"fmt"

	"github.com/bnema/iterrsa/internal/adapters/modelfile"
)

const currentSchemaVersion = 1

// fileSchema is the store layout: a version header over a list of model
// definitions in the shared model file shape.
type fileSchema struct {
	Version int               `toml:"version"`
	Models  []modelfile.Model `toml:"models"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported models schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

// upsert replaces the model with the same name or appends it.
func (s *fileSchema) upsert(model modelfile.Model) {
	for i := range s.Models {
		if s.Models[i].Name == model.Name {
			s.Models[i] = model
			return
		}
	}
	s.Models = append(s.Models, model)
}
