package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makeca/make-ca/internal/domain"
)

func initProject(t *testing.T) string {
	t.Helper()
	project := filepath.Join(t.TempDir(), "shop")
	_, _, err := run(t, "init", "-p", project, "--no-git")
	require.NoError(t, err)
	return project
}

func TestGenerateCmd_AllLayers(t *testing.T) {
	project := initProject(t)

	out, _, err := run(t, "--dir", project, "generate", "user-profile")
	require.NoError(t, err)

	assert.Contains(t, out, "UserProfile")
	assert.FileExists(t, filepath.Join(project, "src/core/domain/user-profile/entity/UserProfile.ts"))
	assert.FileExists(t, filepath.Join(project, "src/core/service/user-profile/GetUserProfilesService.ts"))
	assert.FileExists(t, filepath.Join(project, "src/infrastructure/persistence/typeorm/user-profile/TypeOrmUserProfileMapper.ts"))
	assert.FileExists(t, filepath.Join(project, "src/application/di/feature/UserProfileModule.ts"))
}

func TestGenerateCmd_Alias(t *testing.T) {
	project := initProject(t)

	_, _, err := run(t, "--dir", project, "g", "order", "--only-application")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(project, "src/application/api/http-rest/order/controller/OrderController.ts"))
	assert.NoDirExists(t, filepath.Join(project, "src/core/domain/order"))
}

func TestGenerateCmd_SkipFlags(t *testing.T) {
	project := initProject(t)

	_, _, err := run(t, "--dir", project, "generate", "order", "--skip-domain", "--skip-application")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(project, "src/infrastructure/persistence/typeorm/order"))
	assert.NoDirExists(t, filepath.Join(project, "src/core/domain/order"))
	assert.NoDirExists(t, filepath.Join(project, "src/core/service/order"))
	assert.NoDirExists(t, filepath.Join(project, "src/application/api/http-rest/order"))
}

func TestGenerateCmd_JSON(t *testing.T) {
	project := initProject(t)

	out, _, err := run(t, "--dir", project, "generate", "order", "--only-domain", "--json")
	require.NoError(t, err)

	var report domain.GenerateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "order", report.Entity.KebabCase)
	assert.Equal(t, []domain.Layer{domain.LayerDomain, domain.LayerService}, report.GeneratedLayers())
}

func TestGenerateCmd_DryRun(t *testing.T) {
	project := initProject(t)

	out, _, err := run(t, "--dir", project, "generate", "order", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "dry run")
	assert.NoDirExists(t, filepath.Join(project, "src/core/domain/order"))
}

func TestGenerateCmd_NotInitialized(t *testing.T) {
	dir := t.TempDir()

	_, errOut, err := run(t, "--dir", dir, "generate", "order")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotInitialized))
	assert.Contains(t, errOut, "not initialized")
	assert.Contains(t, errOut, "make-ca init")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCmd_InvalidEntity(t *testing.T) {
	project := initProject(t)

	_, errOut, err := run(t, "--dir", project, "generate", "user_profile")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidEntity))
	assert.Contains(t, errOut, "invalid")
	assert.NotContains(t, errOut, "goroutine")
}

func TestGenerateCmd_NormalizesArgument(t *testing.T) {
	project := initProject(t)

	_, _, err := run(t, "--dir", project, "generate", "  Order  ")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(project, "src/core/domain/order/entity/Order.ts"))
}

func TestGenerateCmd_MissingEntity(t *testing.T) {
	project := initProject(t)

	_, errOut, err := run(t, "--dir", project, "generate")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error:")
}

func TestListCmd(t *testing.T) {
	project := initProject(t)

	_, _, err := run(t, "--dir", project, "generate", "order", "--only-domain")
	require.NoError(t, err)
	_, _, err = run(t, "--dir", project, "generate", "category")
	require.NoError(t, err)

	out, _, err := run(t, "--dir", project, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "order")
	assert.Contains(t, out, "category")

	out, _, err = run(t, "--dir", project, "list", "--json")
	require.NoError(t, err)
	var m domain.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, []domain.Layer{domain.LayerDomain, domain.LayerService}, m.Entities["order"])
	assert.Len(t, m.Entities["category"], 4)
}
