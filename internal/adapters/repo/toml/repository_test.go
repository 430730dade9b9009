package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/iterrsa/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, modelsPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(ModelsPathKey, modelsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func scalarDefinition() domain.ModelDefinition {
	return domain.ModelDefinition{
		Name:        "scalar",
		Description: "some vs all",
		Params: domain.Params{
			Alpha:   2,
			Epsilon: 1e-6,
			Costs:   map[string]float64{"all": 1.5},
		},
		Entries: []domain.Entry{
			{Utterance: "some", World: "ENA", True: true},
			{Utterance: "some", World: "A", True: true},
			{Utterance: "all", World: "ENA", True: false},
			{Utterance: "all", World: "A", True: true},
		},
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "models.toml"))

	first := scalarDefinition()
	second := domain.ModelDefinition{
		Name:    "dress",
		Entries: []domain.Entry{{Utterance: "red dress", World: "R1", True: true}},
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByName(context.Background(), first.Name)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	models, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ModelDefinition{second, first}, models)
}

func TestRepositorySaveReplacesModelWithSameName(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "models.toml"))

	require.NoError(t, repo.Save(context.Background(), scalarDefinition()))

	updated := scalarDefinition()
	updated.Description = "updated"
	require.NoError(t, repo.Save(context.Background(), updated))

	models, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "updated", models[0].Description)
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	require.NoError(t, os.WriteFile(modelsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[models]]",
		"name = \"scalar\"",
		"",
		"[[models.entries]]",
		"utterance = \"some\"",
		"world = \"ENA\"",
		"truth = 1",
		"",
		"[[models.entries]]",
		"utterance = \"all\"",
		"world = \"ENA\"",
		"truth = 0",
		"",
	}, "\n")), 0o644))

	repo := newTestRepository(t, modelsPath)

	model, err := repo.GetByName(context.Background(), "scalar")
	require.NoError(t, err)
	assert.Equal(t, domain.Params{}, model.Params)
	assert.Equal(t, []domain.Entry{
		{Utterance: "some", World: "ENA", True: true},
		{Utterance: "all", World: "ENA", True: false},
	}, model.Entries)
}

func TestRepositoryRejectsNonBinaryTruth(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	require.NoError(t, os.WriteFile(modelsPath, []byte(strings.Join([]string{
		"[[models]]",
		"name = \"scalar\"",
		"[[models.entries]]",
		"utterance = \"some\"",
		"world = \"ENA\"",
		"truth = 2",
		"",
	}, "\n")), 0o644))

	repo := newTestRepository(t, modelsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "truth must be 0 or 1")
}

func TestRepositorySaveCreatesDefaultPath(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), scalarDefinition()))

	modelsPath := filepath.Join(homeDir, ".iterrsa", "models.toml")
	assert.Equal(t, modelsPath, repo.Path())
	info, err := os.Stat(modelsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestRepositoryReadsPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	customPath := filepath.Join(homeDir, "custom", "catalog.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".iterrsa"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".iterrsa", "config.toml"),
		[]byte("[models]\npath = \""+customPath+"\"\n"),
		0o644,
	))

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, customPath, repo.Path())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "models.toml"))

	models, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, models)

	_, err = repo.GetByName(context.Background(), "scalar")
	require.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	require.NoError(t, os.WriteFile(modelsPath, []byte("models = ["), 0o644))

	repo := newTestRepository(t, modelsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode models file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "models.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, scalarDefinition())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllModels(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	repoA := newTestRepository(t, modelsPath)
	repoB := newTestRepository(t, modelsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			model := scalarDefinition()
			model.Name = prefix + strconv.Itoa(i)
			errCh <- repo.Save(context.Background(), model)
		}
	}

	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	models, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, models, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	repo := newTestRepository(t, modelsPath)

	require.NoError(t, repo.Save(context.Background(), scalarDefinition()))

	data, err := os.ReadFile(modelsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "truth = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	modelsPath := filepath.Join(t.TempDir(), "models.toml")
	require.NoError(t, os.WriteFile(modelsPath, []byte("version = 999\n\nmodels = []\n"), 0o644))

	repo := newTestRepository(t, modelsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported models schema version")
}

func TestRepositoriesOnSamePathShareLock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := newTestRepository(t, filepath.Join(dir, "models.toml"))
	b := newTestRepository(t, filepath.Join(dir, ".", "models.toml"))
	c := newTestRepository(t, filepath.Join(dir, "other.toml"))

	assert.Same(t, a.mu, b.mu)
	assert.NotSame(t, a.mu, c.mu)
}
