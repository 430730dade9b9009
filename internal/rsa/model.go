package rsa

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/bnema/iterrsa/internal/domain"
)

// Model evaluates pragmatic listeners and speakers over a Table. A Model holds
// no mutable state apart from the optional speaker memo, so it is safe for
// concurrent use.
type Model struct {
	table  *Table
	logger *slog.Logger
	memo   *speakerMemo
}

type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger.With(slog.String("component", "rsa"))
		}
	}
}

// WithMemo caches speaker distributions by (depth, prefix, world).
func WithMemo() Option {
	return func(m *Model) {
		m.memo = newSpeakerMemo()
	}
}

func NewModel(table *Table, opts ...Option) *Model {
	m := &Model{
		table:  table,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// New builds a table from entries and wraps it in a Model.
func New(entries []domain.Entry, params domain.Params, opts ...Option) (*Model, error) {
	table, err := NewTable(entries, params)
	if err != nil {
		return nil, err
	}
	return NewModel(table, opts...), nil
}

func (m *Model) Table() *Table {
	return m.table
}

// Listener returns L_n(w | prefix, word) for every world w.
func (m *Model) Listener(n int, prefix string, word string) (domain.Distribution, error) {
	return m.listener(n, domain.ParsePrefix(prefix), word)
}

// ListenerProb returns L_n(world | prefix, word).
func (m *Model) ListenerProb(n int, prefix string, word string, world string) (float64, error) {
	if err := m.table.checkWorld(world); err != nil {
		return 0, err
	}
	return m.listenerProb(n, domain.ParsePrefix(prefix), word, world)
}

// Speaker returns S_n(word | prefix, world) for every vocabulary word.
func (m *Model) Speaker(n int, prefix string, world string) (domain.Distribution, error) {
	dist, err := m.speaker(n, domain.ParsePrefix(prefix), world)
	if err != nil {
		return nil, err
	}
	return append(domain.Distribution(nil), dist...), nil
}

// SpeakerProb returns S_n(word | prefix, world).
func (m *Model) SpeakerProb(n int, prefix string, world string, word string) (float64, error) {
	if err := m.table.checkWord(word); err != nil {
		return 0, err
	}
	return m.speakerProb(n, domain.ParsePrefix(prefix), world, word)
}

func (m *Model) listener(n int, prefix domain.Utterance, word string) (domain.Distribution, error) {
	if n < 0 {
		return nil, fmt.Errorf("listener depth %d: %w", n, domain.ErrInvalidDepth)
	}
	if err := m.table.checkWords(prefix); err != nil {
		return nil, err
	}
	if err := m.table.checkWord(word); err != nil {
		return nil, err
	}

	extended := prefix.Extend(word)
	if !m.table.valid(extended) {
		return nil, fmt.Errorf("%q: %w", extended.String(), domain.ErrInvalidPrefix)
	}

	worlds := m.table.worlds
	scores := make([]float64, len(worlds))
	for i, world := range worlds {
		var (
			score float64
			err   error
		)
		if n == 0 {
			score, err = m.table.literalTruth(extended, world)
		} else {
			score, err = m.speakerProb(n, prefix, world, word)
		}
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}

	dist, err := domain.Normalize(worlds, scores)
	if err != nil {
		return nil, fmt.Errorf("L%d(w | c=%q, wd=%q): %w", n, prefix.String(), word, err)
	}

	m.logger.Debug("listener",
		slog.Int("depth", n),
		slog.String("prefix", prefix.String()),
		slog.String("word", word),
		slog.String("dist", formatDistribution(dist)),
	)

	return dist, nil
}

func (m *Model) listenerProb(n int, prefix domain.Utterance, word string, world string) (float64, error) {
	dist, err := m.listener(n, prefix, word)
	if err != nil {
		return 0, err
	}
	p, _ := dist.Prob(world)
	return p, nil
}

func (m *Model) speaker(n int, prefix domain.Utterance, world string) (domain.Distribution, error) {
	if n < 1 {
		return nil, fmt.Errorf("speaker depth %d: %w", n, domain.ErrInvalidDepth)
	}
	if err := m.table.checkWorld(world); err != nil {
		return nil, err
	}
	if err := m.table.checkWords(prefix); err != nil {
		return nil, err
	}
	if !m.table.valid(prefix) {
		return nil, fmt.Errorf("%q: %w", prefix.String(), domain.ErrInvalidPrefix)
	}

	key := memoKey{depth: n, prefix: prefix.String(), world: world}
	if dist, ok := m.memo.get(key); ok {
		m.logSpeaker(n, prefix, world, dist, true)
		return dist, nil
	}

	params := m.table.params
	words := m.table.words
	logWeights := make([]float64, len(words))
	valid := make([]bool, len(words))
	maxLogWeight := math.Inf(-1)
	for i, word := range words {
		if !m.table.valid(prefix.Extend(word)) {
			continue
		}

		p, err := m.listenerProb(n-1, prefix, word, world)
		if err != nil {
			return nil, err
		}
		if p == 0 {
			p = params.Epsilon
		}
		utility := math.Log(p) - params.Cost(word)
		logWeights[i] = params.Alpha * utility
		valid[i] = true
		maxLogWeight = math.Max(maxLogWeight, logWeights[i])
	}

	// Shifted by the largest log-weight; the best word always scores exp(0).
	scores := make([]float64, len(words))
	for i := range words {
		if valid[i] {
			scores[i] = math.Exp(logWeights[i] - maxLogWeight)
		}
	}

	dist, err := domain.Normalize(words, scores)
	if err != nil {
		return nil, fmt.Errorf("S%d(wd | c=%q, w=%q): %w", n, prefix.String(), world, err)
	}

	m.logSpeaker(n, prefix, world, dist, false)

	m.memo.put(key, dist)
	return dist, nil
}

func (m *Model) logSpeaker(n int, prefix domain.Utterance, world string, dist domain.Distribution, cached bool) {
	m.logger.Debug("speaker",
		slog.Int("depth", n),
		slog.String("prefix", prefix.String()),
		slog.String("world", world),
		slog.Bool("cached", cached),
		slog.String("dist", formatDistribution(dist)),
	)
}

func (m *Model) speakerProb(n int, prefix domain.Utterance, world string, word string) (float64, error) {
	dist, err := m.speaker(n, prefix, world)
	if err != nil {
		return 0, err
	}
	p, _ := dist.Prob(word)
	return p, nil
}

func formatDistribution(dist domain.Distribution) string {
	parts := make([]string, 0, len(dist))
	for _, o := range dist {
		parts = append(parts, fmt.Sprintf("%s=%.4f", o.Key, o.Prob))
	}
	return strings.Join(parts, " ")
}
