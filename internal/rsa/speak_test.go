package rsa

import (
	"strings"
	"testing"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakGeneratesArgmaxUtterance(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, scalarEntries())

	ena, err := m.Speak(1, "ENA")
	require.NoError(t, err)
	assert.Equal(t, "<s> some </s>", ena.Utterance)
	assert.InDelta(t, 1, ena.Prob, 1e-6)

	a, err := m.Speak(1, "A")
	require.NoError(t, err)
	assert.Equal(t, "<s> all </s>", a.Utterance)
	assert.InDelta(t, 2.0/3.0, a.Prob, tolerance)
}

func TestSpeakBreaksTiesLexicographically(t *testing.T) {
	t.Parallel()

	m, err := New([]domain.Entry{
		{Utterance: "beta", World: "W", True: true},
		{Utterance: "alpha", World: "W", True: true},
	}, domain.Params{})
	require.NoError(t, err)

	got, err := m.Speak(1, "W")
	require.NoError(t, err)
	assert.Equal(t, "<s> alpha </s>", got.Utterance)
	assert.InDelta(t, 0.5, got.Prob, tolerance)
}

func TestSpeakAndScoreRoundTrip(t *testing.T) {
	t.Parallel()

	for name, entries := range map[string][]domain.Entry{
		"scalar":   scalarEntries(),
		"symmetry": symmetryEntries(),
		"dress":    dressEntries(),
		"embedded": embeddedEntries(),
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, entries, WithMemo())
			for n := 1; n <= 2; n++ {
				for _, world := range m.Table().Worlds() {
					gen, err := m.Speak(n, world)
					require.NoError(t, err)
					assert.True(t, strings.HasSuffix(gen.Utterance, domain.EndMarker))
					assert.Greater(t, gen.Prob, 0.0)
					assert.LessOrEqual(t, gen.Prob, 1.0)

					score, err := m.Score(n, world, gen.Utterance)
					require.NoError(t, err)
					assert.InDelta(t, gen.Prob, score, 1e-12)
				}
			}
		})
	}
}

func TestScoreAddsMissingMarkers(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, scalarEntries())

	bare, err := m.Score(1, "A", "some")
	require.NoError(t, err)
	wrapped, err := m.Score(1, "A", "<s> some </s>")
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, bare, tolerance)
	assert.Equal(t, bare, wrapped)
}

func TestScoreRejectsIncompleteUtterances(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, symmetryEntries())

	for _, utterance := range []string{"some but", "many", "all some"} {
		_, err := m.Score(1, "ENA", utterance)
		require.ErrorIs(t, err, domain.ErrInvalidUtterance, utterance)
	}
}
