package rsa

import (
	"math"

	"github.com/bnema/iterrsa/internal/domain"
)

const treeProbDigits = 4

// SpeakerTree expands S_n for world into every prefix the speaker can reach
// with non-zero probability. Children follow vocabulary order.
func (m *Model) SpeakerTree(n int, world string) (*domain.ReasoningTree, error) {
	tree := domain.NewReasoningTree(world, n)
	if err := m.expand(tree, 0, domain.Utterance{domain.StartMarker}, n, world); err != nil {
		return nil, err
	}
	return tree, nil
}

func (m *Model) expand(tree *domain.ReasoningTree, node int, prefix domain.Utterance, n int, world string) error {
	dist, err := m.speaker(n, prefix, world)
	if err != nil {
		return err
	}

	for _, o := range dist {
		if o.Prob == 0 {
			continue
		}

		child := tree.AddChild(node, o.Key, roundProb(o.Prob, treeProbDigits))
		if o.Key == domain.EndMarker {
			continue
		}
		if err := m.expand(tree, child, prefix.Extend(o.Key), n, world); err != nil {
			return err
		}
	}

	return nil
}

func roundProb(p float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(p*scale) / scale
}
