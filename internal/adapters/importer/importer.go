// Package importer reads model definition files written in TOML or YAML.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bnema/iterrsa/internal/adapters/modelfile"
	"github.com/bnema/iterrsa/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported model file format")
	ErrNoMatches         = errors.New("pattern matched no files")
)

// definitionFile holds either a single model at the top level or a list under
// models.
type definitionFile struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Params      modelfile.Params  `toml:"params" yaml:"params"`
	Entries     []modelfile.Entry `toml:"entries" yaml:"entries"`
	Models      []modelfile.Model `toml:"models" yaml:"models"`
}

// Expand resolves doublestar patterns (e.g. models/**/*.yaml) into a sorted,
// de-duplicated list of files. Plain paths are passed through.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%q: %w", pattern, ErrNoMatches)
		}

		sort.Strings(matches)
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}

	return paths, nil
}

// LoadFiles expands patterns and decodes every matched file.
func LoadFiles(patterns []string) ([]domain.ModelDefinition, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}

	var models []domain.ModelDefinition
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		models = append(models, loaded...)
	}

	return models, nil
}

func LoadFile(path string) ([]domain.ModelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var file definitionFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode model file %s: %w", path, err)
	}

	schemas := file.Models
	if len(file.Entries) > 0 {
		single := modelfile.Model{
			Name:        file.Name,
			Description: file.Description,
			Params:      file.Params,
			Entries:     file.Entries,
		}
		if single.Name == "" {
			single.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		schemas = append([]modelfile.Model{single}, schemas...)
	}
	if len(schemas) == 0 {
		return nil, fmt.Errorf("%s: no models defined", path)
	}

	models, err := modelfile.ToDomainAll(schemas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return models, nil
}
