// Package modelfile is the on-disk shape of a model definition, shared by the
// model store and the importer. Truth values are written as 0 or 1 so tables
// read like the grids they describe.
package modelfile

import (
	"fmt"

	"github.com/bnema/iterrsa/internal/domain"
)

type Model struct {
	Name        string  `toml:"name" yaml:"name"`
	Description string  `toml:"description,omitempty" yaml:"description,omitempty"`
	Params      Params  `toml:"params,omitempty" yaml:"params,omitempty"`
	Entries     []Entry `toml:"entries" yaml:"entries"`
}

type Params struct {
	Alpha   float64            `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	Epsilon float64            `toml:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	Costs   map[string]float64 `toml:"costs,omitempty" yaml:"costs,omitempty"`
}

type Entry struct {
	Utterance string `toml:"utterance" yaml:"utterance"`
	World     string `toml:"world" yaml:"world"`
	Truth     int    `toml:"truth" yaml:"truth"`
}

func (e Entry) Validate() error {
	if e.Truth != 0 && e.Truth != 1 {
		return fmt.Errorf("entry %q/%q: truth must be 0 or 1, got %d", e.Utterance, e.World, e.Truth)
	}
	return nil
}

func FromDomain(def domain.ModelDefinition) Model {
	entries := make([]Entry, 0, len(def.Entries))
	for _, entry := range def.Entries {
		truth := 0
		if entry.True {
			truth = 1
		}
		entries = append(entries, Entry{Utterance: entry.Utterance, World: entry.World, Truth: truth})
	}

	return Model{
		Name:        def.Name,
		Description: def.Description,
		Params: Params{
			Alpha:   def.Params.Alpha,
			Epsilon: def.Params.Epsilon,
			Costs:   def.Params.Costs,
		},
		Entries: entries,
	}
}

// ToDomain converts m, rejecting truth values other than 0 and 1. Semantic
// checks (conflicts, parameter ranges) are left to the engine.
func (m Model) ToDomain() (domain.ModelDefinition, error) {
	entries := make([]domain.Entry, 0, len(m.Entries))
	for _, entry := range m.Entries {
		if err := entry.Validate(); err != nil {
			return domain.ModelDefinition{}, fmt.Errorf("model %q: %w", m.Name, err)
		}
		entries = append(entries, domain.Entry{Utterance: entry.Utterance, World: entry.World, True: entry.Truth == 1})
	}

	return domain.ModelDefinition{
		Name:        m.Name,
		Description: m.Description,
		Params: domain.Params{
			Alpha:   m.Params.Alpha,
			Epsilon: m.Params.Epsilon,
			Costs:   m.Params.Costs,
		},
		Entries: entries,
	}, nil
}

// ToDomainAll converts every model, stopping at the first invalid one.
func ToDomainAll(models []Model) ([]domain.ModelDefinition, error) {
	defs := make([]domain.ModelDefinition, 0, len(models))
	for _, m := range models {
		def, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
