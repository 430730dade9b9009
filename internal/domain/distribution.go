package domain

import "fmt"

type Outcome struct {
	Key  string  `json:"key"`
	Prob float64 `json:"prob"`
}

// Distribution is an ordered probability distribution over worlds or words.
// Order is the order the keys were scored in, which is also the tie-break
// order for Max.
type Distribution []Outcome

// Normalize divides every weight by the total. It fails with
// ErrDegenerateNormalization when there is nothing to normalize.
func Normalize(keys []string, weights []float64) (Distribution, error) {
	if len(keys) != len(weights) {
		return nil, fmt.Errorf("normalize %d keys with %d weights: %w", len(keys), len(weights), ErrDegenerateNormalization)
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if len(keys) == 0 || total == 0 {
		return nil, ErrDegenerateNormalization
	}

	dist := make(Distribution, len(keys))
	for i, key := range keys {
		dist[i] = Outcome{Key: key, Prob: weights[i] / total}
	}
	return dist, nil
}

func (d Distribution) Prob(key string) (float64, bool) {
	for _, o := range d {
		if o.Key == key {
			return o.Prob, true
		}
	}
	return 0, false
}

// Max returns the most probable outcome; the earliest key wins ties.
func (d Distribution) Max() Outcome {
	var best Outcome
	for i, o := range d {
		if i == 0 || o.Prob > best.Prob {
			best = o
		}
	}
	return best
}

func (d Distribution) Sum() float64 {
	total := 0.0
	for _, o := range d {
		total += o.Prob
	}
	return total
}

func (d Distribution) Keys() []string {
	keys := make([]string, len(d))
	for i, o := range d {
		keys[i] = o.Key
	}
	return keys
}

func (d Distribution) Map() map[string]float64 {
	out := make(map[string]float64, len(d))
	for _, o := range d {
		out[o.Key] = o.Prob
	}
	return out
}
