package rsa

import (
	"fmt"

	"github.com/bnema/iterrsa/internal/domain"
)

type TraceStep struct {
	Prefix string  `json:"prefix"`
	Word   string  `json:"word"`
	World  string  `json:"world"`
	Prob   float64 `json:"prob"`
}

// Trace is the incremental reading of one utterance: the best world after
// each word, and the single most confident step.
type Trace struct {
	Depth     int            `json:"depth"`
	Utterance string         `json:"utterance"`
	Steps     []TraceStep    `json:"steps"`
	Best      domain.Outcome `json:"best"`
}

type Posterior struct {
	Depth        int                 `json:"depth"`
	Utterance    string              `json:"utterance"`
	Distribution domain.Distribution `json:"distribution"`
	Best         domain.Outcome      `json:"best"`
}

// ListenMax runs L_n over every incremental prefix of utterance and picks the
// argmax world at each step. Ties go to the earliest world in table order.
func (m *Model) ListenMax(n int, utterance string) (Trace, error) {
	u := domain.ParseComplete(utterance)
	if !m.table.validComplete(u) {
		return Trace{}, fmt.Errorf("%q: %w", u.String(), domain.ErrInvalidUtterance)
	}

	trace := Trace{
		Depth:     n,
		Utterance: u.String(),
		Steps:     make([]TraceStep, 0, len(u)-1),
	}
	for i := 1; i < len(u); i++ {
		dist, err := m.listener(n, u[:i], u[i])
		if err != nil {
			return Trace{}, err
		}

		best := dist.Max()
		trace.Steps = append(trace.Steps, TraceStep{
			Prefix: u[:i].String(),
			Word:   u[i],
			World:  best.Key,
			Prob:   best.Prob,
		})
		if i == 1 || best.Prob > trace.Best.Prob {
			trace.Best = best
		}
	}

	return trace, nil
}

// ListenUtterance inverts the speaker with a uniform prior over worlds: the
// posterior of w is proportional to the probability of S_n producing the
// whole utterance for w.
func (m *Model) ListenUtterance(n int, utterance string) (Posterior, error) {
	u := domain.ParseComplete(utterance)
	worlds := m.table.worlds
	scores := make([]float64, len(worlds))
	for i, world := range worlds {
		p, err := m.Score(n, world, utterance)
		if err != nil {
			return Posterior{}, err
		}
		scores[i] = p
	}

	dist, err := domain.Normalize(worlds, scores)
	if err != nil {
		return Posterior{}, fmt.Errorf("posterior for %q: %w", u.String(), err)
	}

	return Posterior{
		Depth:        n,
		Utterance:    u.String(),
		Distribution: dist,
		Best:         dist.Max(),
	}, nil
}
