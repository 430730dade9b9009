package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scalarYAML = `name: scalar
description: some vs all
params:
  alpha: 2
  costs:
    all: 0.5
entries:
  - {utterance: some, world: ENA, truth: 1}
  - {utterance: some, world: A, truth: 1}
  - {utterance: all, world: ENA, truth: 0}
  - {utterance: all, world: A, truth: 1}
`

const catalogTOML = `[[models]]
name = "one"

[[models.entries]]
utterance = "hi"
world = "W"
truth = 1

[[models]]
name = "two"

[models.params]
epsilon = 0.001

[[models.entries]]
utterance = "bye"
world = "W"
truth = 0
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scalar.yaml")
	writeFile(t, path, scalarYAML)

	models, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, models, 1)

	assert.Equal(t, domain.ModelDefinition{
		Name:        "scalar",
		Description: "some vs all",
		Params:      domain.Params{Alpha: 2, Costs: map[string]float64{"all": 0.5}},
		Entries: []domain.Entry{
			{Utterance: "some", World: "ENA", True: true},
			{Utterance: "some", World: "A", True: true},
			{Utterance: "all", World: "ENA", True: false},
			{Utterance: "all", World: "A", True: true},
		},
	}, models[0])
}

func TestLoadFileTOMLCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	writeFile(t, path, catalogTOML)

	models, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "one", models[0].Name)
	assert.Equal(t, "two", models[1].Name)
	assert.Equal(t, 0.001, models[1].Params.Epsilon)
	assert.False(t, models[1].Entries[0].True)
}

func TestLoadFileNamesUnnamedModelAfterFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "greeting.yml")
	writeFile(t, path, "entries:\n  - {utterance: hi, world: W, truth: 1}\n")

	models, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "greeting", models[0].Name)
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	unsupported := filepath.Join(dir, "model.json")
	writeFile(t, unsupported, "{}")
	_, err := LoadFile(unsupported)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	badTruth := filepath.Join(dir, "bad.yaml")
	writeFile(t, badTruth, "entries:\n  - {utterance: hi, world: W, truth: 3}\n")
	_, err = LoadFile(badTruth)
	require.Error(t, err)
	assert.ErrorContains(t, err, "truth must be 0 or 1")

	empty := filepath.Join(dir, "empty.toml")
	writeFile(t, empty, "")
	_, err = LoadFile(empty)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no models defined")

	malformed := filepath.Join(dir, "malformed.toml")
	writeFile(t, malformed, "models = [")
	_, err = LoadFile(malformed)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode model file")
}

func TestLoadFilesExpandsDoublestarPatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "scalar.yaml"), scalarYAML)
	writeFile(t, filepath.Join(dir, "a", "b", "catalog.toml"), catalogTOML)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	paths, err := Expand([]string{
		filepath.Join(dir, "**", "*.yaml"),
		filepath.Join(dir, "**", "*.toml"),
		filepath.Join(dir, "a", "scalar.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "scalar.yaml"),
		filepath.Join(dir, "a", "b", "catalog.toml"),
	}, paths)

	models, err := LoadFiles([]string{filepath.Join(dir, "**", "*.{yaml,toml}")})
	require.NoError(t, err)
	assert.Len(t, models, 3)
}

func TestExpandReportsUnmatchedPattern(t *testing.T) {
	t.Parallel()

	_, err := Expand([]string{filepath.Join(t.TempDir(), "*.yaml")})
	require.ErrorIs(t, err, ErrNoMatches)
}
