// Package rsa implements the iterated Rational Speech Act model: a pragmatic
// listener and speaker defined by mutual recursion over a literal semantics
// table.
package rsa

import (
	"fmt"
	"sort"

	"github.com/bnema/iterrsa/internal/domain"
)

type entryKey struct {
	utterance string
	world     string
}

// Table is an immutable literal semantics table. Utterances are stored with
// both markers; worlds keep their first-seen order and the vocabulary is
// sorted lexicographically.
type Table struct {
	utterances []domain.Utterance
	worlds     []string
	worldSet   map[string]struct{}
	words      []string
	wordSet    map[string]struct{}
	truth      map[entryKey]bool
	params     domain.Params
	maxLen     int
}

func NewTable(entries []domain.Entry, params domain.Params) (*Table, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		worldSet: make(map[string]struct{}),
		wordSet:  make(map[string]struct{}),
		truth:    make(map[entryKey]bool, len(entries)),
	}

	seenUtterances := make(map[string]struct{})
	for _, entry := range entries {
		utterance := domain.ParseComplete(entry.Utterance)
		key := entryKey{utterance: utterance.String(), world: entry.World}

		if previous, ok := t.truth[key]; ok && previous != entry.True {
			return nil, fmt.Errorf("%q in world %q: %w", key.utterance, key.world, domain.ErrConflictingEntry)
		}
		t.truth[key] = entry.True

		if _, ok := seenUtterances[key.utterance]; !ok {
			seenUtterances[key.utterance] = struct{}{}
			t.utterances = append(t.utterances, utterance)
			if len(utterance) > t.maxLen {
				t.maxLen = len(utterance)
			}
			for _, word := range utterance {
				t.wordSet[word] = struct{}{}
			}
		}
		if _, ok := t.worldSet[entry.World]; !ok {
			t.worldSet[entry.World] = struct{}{}
			t.worlds = append(t.worlds, entry.World)
		}
	}

	t.words = make([]string, 0, len(t.wordSet))
	for word := range t.wordSet {
		t.words = append(t.words, word)
	}
	sort.Strings(t.words)

	for word := range params.Costs {
		if _, ok := t.wordSet[word]; !ok {
			return nil, fmt.Errorf("cost given for unknown word %q: %w", word, domain.ErrInvalidParams)
		}
	}
	t.params = params

	return t, nil
}

func (t *Table) Worlds() []string {
	return append([]string(nil), t.worlds...)
}

func (t *Table) Words() []string {
	return append([]string(nil), t.words...)
}

func (t *Table) Utterances() []string {
	out := make([]string, len(t.utterances))
	for i, u := range t.utterances {
		out[i] = u.String()
	}
	return out
}

func (t *Table) Params() domain.Params {
	return t.params
}

// Valid reports whether some complete utterance starts with prefix. The start
// marker is prepended when missing.
func (t *Table) Valid(prefix string) bool {
	return t.valid(domain.ParsePrefix(prefix))
}

func (t *Table) valid(prefix domain.Utterance) bool {
	for _, u := range t.utterances {
		if u.HasPrefix(prefix) {
			return true
		}
	}
	return false
}

// validComplete reports whether u is one of the table's complete utterances.
func (t *Table) validComplete(u domain.Utterance) bool {
	if !u.Complete() {
		return false
	}
	for _, candidate := range t.utterances {
		if len(candidate) == len(u) && candidate.HasPrefix(u) {
			return true
		}
	}
	return false
}

// LiteralTruth returns the fraction of complete utterances extending prefix
// that are true of world.
func (t *Table) LiteralTruth(prefix string, world string) (float64, error) {
	return t.literalTruth(domain.ParsePrefix(prefix), world)
}

func (t *Table) literalTruth(prefix domain.Utterance, world string) (float64, error) {
	if err := t.checkWorld(world); err != nil {
		return 0, err
	}
	if err := t.checkWords(prefix); err != nil {
		return 0, err
	}

	trueExtensions := 0
	totalExtensions := 0
	for _, u := range t.utterances {
		if !u.HasPrefix(prefix) {
			continue
		}
		totalExtensions++

		truth, ok := t.truth[entryKey{utterance: u.String(), world: world}]
		if !ok {
			return 0, fmt.Errorf("%q in world %q: %w", u.String(), world, domain.ErrMissingEntry)
		}
		if truth {
			trueExtensions++
		}
	}

	if totalExtensions == 0 {
		return 0, fmt.Errorf("%q: %w", prefix.String(), domain.ErrInvalidPrefix)
	}

	return float64(trueExtensions) / float64(totalExtensions), nil
}

func (t *Table) checkWorld(world string) error {
	if _, ok := t.worldSet[world]; !ok {
		return fmt.Errorf("%q: %w", world, domain.ErrInvalidWorld)
	}
	return nil
}

func (t *Table) checkWord(word string) error {
	if _, ok := t.wordSet[word]; !ok {
		return fmt.Errorf("%q: %w", word, domain.ErrInvalidWord)
	}
	return nil
}

func (t *Table) checkWords(prefix domain.Utterance) error {
	for _, word := range prefix {
		if err := t.checkWord(word); err != nil {
			return err
		}
	}
	return nil
}
