package domain

import (
	"fmt"
	"math"
)

const (
	DefaultAlpha    = 1.0
	DefaultEpsilon  = 1e-9
	DefaultWordCost = 1.0
)

// Params configures the speaker's utility. Costs overrides the default cost of
// individual words; unlisted words cost DefaultWordCost.
type Params struct {
	Alpha   float64            `json:"alpha"`
	Epsilon float64            `json:"epsilon"`
	Costs   map[string]float64 `json:"costs,omitempty"`
}

func DefaultParams() Params {
	return Params{Alpha: DefaultAlpha, Epsilon: DefaultEpsilon}
}

// WithDefaults fills zero-valued fields with their defaults.
func (p Params) WithDefaults() Params {
	if p.Alpha == 0 {
		p.Alpha = DefaultAlpha
	}
	if p.Epsilon == 0 {
		p.Epsilon = DefaultEpsilon
	}
	return p
}

func (p Params) Validate() error {
	if !(p.Alpha > 0) || math.IsInf(p.Alpha, 0) {
		return fmt.Errorf("alpha must be positive, got %v: %w", p.Alpha, ErrInvalidParams)
	}
	if !(p.Epsilon > 0 && p.Epsilon < 1) {
		return fmt.Errorf("epsilon must be in (0,1), got %v: %w", p.Epsilon, ErrInvalidParams)
	}
	for word, cost := range p.Costs {
		if !(cost >= 0) || math.IsInf(cost, 0) {
			return fmt.Errorf("cost of %q must be non-negative, got %v: %w", word, cost, ErrInvalidParams)
		}
	}
	return nil
}

func (p Params) Cost(word string) float64 {
	if cost, ok := p.Costs[word]; ok {
		return cost
	}
	return DefaultWordCost
}
