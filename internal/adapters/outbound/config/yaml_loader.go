package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/makeca/make-ca/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = domain.ConfigFileName

// YAMLStore implements domain.ConfigStore by reading and writing .make-ca.yaml.
type YAMLStore struct{}

// New creates a YAMLStore.
func New() *YAMLStore { return &YAMLStore{} }

// Exists reports whether projectPath carries the init marker.
func (s *YAMLStore) Exists(projectPath string) bool {
	info, err := os.Stat(filepath.Join(projectPath, fileName))
	return err == nil && !info.IsDir()
}

// Load reads .make-ca.yaml from projectPath. A missing file means the
// project was never initialized.
func (s *YAMLStore) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ProjectConfig{}, notInitialized(projectPath)
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	if cfg.SourceRoot == "" {
		cfg.SourceRoot = domain.DefaultSourceRoot
	}

	return cfg, nil
}

// Save writes cfg to projectPath/.make-ca.yaml with a short header.
func (s *YAMLStore) Save(projectPath string, cfg domain.ProjectConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", fileName, err)
	}

	content := "# make-ca project configuration\n# templates_dir: templates   # optional overrides, <dir>/<template>.tmpl\n\n" + string(body)
	if err := os.WriteFile(filepath.Join(projectPath, fileName), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	return nil
}

func notInitialized(projectPath string) error {
	return domain.NewUserError(domain.KindNotInitialized,
		fmt.Sprintf("Project is not initialized in %s!", projectPath),
		"make-ca init",
	)
}
