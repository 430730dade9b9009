// Package toml stores model definitions in a single versioned TOML file.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/iterrsa/internal/adapters/modelfile"
	"github.com/bnema/iterrsa/internal/domain"
	"github.com/bnema/iterrsa/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ModelsPathKey = "models.path"
	ConfigDir     = ".iterrsa"

	configName      = "config"
	configType      = "toml"
	modelsFile      = "models.toml"
	modelsFileMode  = 0o644
	modelsDirMode   = 0o755
	tempFilePattern = ".models-*.toml.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.ModelRepository = (*Repository)(nil)

// pathLocks shares one lock per file between repositories opened on the same
// path.
var pathLocks sync.Map

// NewRepository resolves the store path from cfg. It reads
// ~/.iterrsa/config.toml when present; a value already set on cfg wins.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetDefault(ModelsPathKey, filepath.Join(homeDir, ConfigDir, modelsFile))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(ModelsPathKey)
	if path == "" {
		return nil, errors.New("models path is empty")
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve models path: %w", err)
	}
	path = filepath.Clean(path)

	mu, _ := pathLocks.LoadOrStore(path, &sync.RWMutex{})
	return &Repository{path: path, mu: mu.(*sync.RWMutex)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.ModelDefinition, error) {
	models, err := r.catalog(ctx)
	if err != nil {
		return domain.ModelDefinition{}, err
	}

	for _, model := range models {
		if model.Name == name {
			return model, nil
		}
	}

	return domain.ModelDefinition{}, fmt.Errorf("%q: %w", name, domain.ErrModelNotFound)
}

// List returns every stored model sorted by name.
func (r *Repository) List(ctx context.Context) ([]domain.ModelDefinition, error) {
	models, err := r.catalog(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

// Save replaces a stored model of the same name or appends a new one.
func (r *Repository) Save(ctx context.Context, model domain.ModelDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.load()
	if err != nil {
		return err
	}
	file.upsert(modelfile.FromDomain(model))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store(file)
}

func (r *Repository) catalog(ctx context.Context) ([]domain.ModelDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	file, err := r.load()
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	return modelfile.ToDomainAll(file.Models)
}

// load reads the store; a missing file is an empty store.
func (r *Repository) load() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileSchema{Version: currentSchemaVersion}, nil
	}
	if err != nil {
		return fileSchema{}, fmt.Errorf("read models file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode models file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

func (r *Repository) store(file fileSchema) error {
	file.Version = currentSchemaVersion

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode models file: %w", err)
	}

	return writeFileAtomic(r.path, data)
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so readers never see a partial store.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, modelsDirMode); err != nil {
		return fmt.Errorf("create models directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp models file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp models file: %w", err)
	}
	if err = tmp.Chmod(modelsFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp models file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp models file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace models file: %w", err)
	}

	return nil
}
