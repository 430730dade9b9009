package domain

import (
	"fmt"
	"strings"
)

// Entry is one row of a literal semantics table.
type Entry struct {
	Utterance string `json:"utterance"`
	World     string `json:"world"`
	True      bool   `json:"true"`
}

// ModelDefinition is a named semantics table together with its parameters.
type ModelDefinition struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Params      Params  `json:"params"`
	Entries     []Entry `json:"entries"`
}

func (m ModelDefinition) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(m.Entries) == 0 {
		return fmt.Errorf("model %q has no entries", m.Name)
	}
	for i, entry := range m.Entries {
		if len(ParseUtterance(entry.Utterance).Words()) == 0 {
			return fmt.Errorf("model %q entry %d: utterance is empty", m.Name, i)
		}
		if strings.TrimSpace(entry.World) == "" {
			return fmt.Errorf("model %q entry %d: world is required", m.Name, i)
		}
		if strings.ContainsAny(entry.World, " \t\n") {
			return fmt.Errorf("model %q entry %d: world %q contains whitespace", m.Name, i, entry.World)
		}
	}

	return m.Params.WithDefaults().Validate()
}
