package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := manifest.New()

	m := domain.NewManifest()
	m.Record("user-profile", []domain.Layer{domain.LayerDomain, domain.LayerService})
	require.NoError(t, s.Save(dir, m))

	loaded, err := s.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-profile"}, loaded.Names())
	assert.Equal(t, []domain.Layer{domain.LayerDomain, domain.LayerService}, loaded.Entities["user-profile"])
}

func TestManifest_LoadMissingReturnsEmpty(t *testing.T) {
	m, err := manifest.New().Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m.Names())
}

func TestManifest_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested")
	require.NoError(t, manifest.New().Save(dir, domain.NewManifest()))

	_, err := os.Stat(manifest.Path(dir))
	assert.NoError(t, err)
}

func TestManifest_SaveIsStable(t *testing.T) {
	dir := t.TempDir()
	s := manifest.New()

	m := domain.NewManifest()
	m.Record("order", []domain.Layer{domain.LayerDomain})
	m.Record("category", []domain.Layer{domain.LayerInfrastructure})

	require.NoError(t, s.Save(dir, m))
	first, err := os.ReadFile(manifest.Path(dir))
	require.NoError(t, err)

	require.NoError(t, s.Save(dir, m))
	second, err := os.ReadFile(manifest.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestManifest_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.ManifestDir), 0755))
	require.NoError(t, os.WriteFile(manifest.Path(dir), []byte("{not json"), 0644))

	_, err := manifest.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}
