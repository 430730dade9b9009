package rsa

import (
	"fmt"

	"github.com/bnema/iterrsa/internal/domain"
)

type Generation struct {
	World     string  `json:"world"`
	Utterance string  `json:"utterance"`
	Prob      float64 `json:"prob"`
}

// Speak greedily generates the most probable utterance for world, picking the
// argmax word of S_n at every step. Equally probable words resolve to the
// lexicographically smallest one.
func (m *Model) Speak(n int, world string) (Generation, error) {
	if err := m.table.checkWorld(world); err != nil {
		return Generation{}, err
	}

	prefix := domain.Utterance{domain.StartMarker}
	prob := 1.0

	for step := 0; step < m.table.maxLen; step++ {
		dist, err := m.speaker(n, prefix, world)
		if err != nil {
			return Generation{}, err
		}

		best := dist.Max()
		prob *= best.Prob
		prefix = prefix.Extend(best.Key)

		if best.Key == domain.EndMarker {
			return Generation{World: world, Utterance: prefix.String(), Prob: prob}, nil
		}
	}

	return Generation{}, fmt.Errorf("world %q after %q: %w", world, prefix.String(), domain.ErrNonTerminating)
}

// Score returns the probability that S_n produces utterance word by word for
// world. Missing markers are added.
func (m *Model) Score(n int, world string, utterance string) (float64, error) {
	u := domain.ParseComplete(utterance)
	if !m.table.validComplete(u) {
		return 0, fmt.Errorf("%q: %w", u.String(), domain.ErrInvalidUtterance)
	}

	prob := 1.0
	for i := 1; i < len(u); i++ {
		p, err := m.speakerProb(n, u[:i], world, u[i])
		if err != nil {
			return 0, err
		}
		prob *= p
	}

	return prob, nil
}
