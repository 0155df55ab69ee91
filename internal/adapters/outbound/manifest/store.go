// Package manifest persists the list of generated entities as JSON.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/makeca/make-ca/internal/domain"
)

const manifestFile = "manifest.json"

// FileStore implements domain.ManifestStore using <project>/.make-ca/manifest.json.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Path returns the manifest location for projectPath.
func Path(projectPath string) string {
	return filepath.Join(projectPath, domain.ManifestDir, manifestFile)
}

// Load returns an empty manifest when none has been written yet.
func (s *FileStore) Load(projectPath string) (*domain.Manifest, error) {
	data, err := os.ReadFile(Path(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewManifest(), nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := domain.NewManifest()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Entities == nil {
		m.Entities = make(map[string][]domain.Layer)
	}
	return m, nil
}

func (s *FileStore) Save(projectPath string, m *domain.Manifest) error {
	fp := Path(projectPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	return os.WriteFile(fp, append(data, '\n'), 0644)
}
