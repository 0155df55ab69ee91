package application_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/makeca/make-ca/internal/adapters/outbound/config"
	"github.com/makeca/make-ca/internal/adapters/outbound/gitinfo"
	"github.com/makeca/make-ca/internal/adapters/outbound/logging"
	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/adapters/outbound/projectfs"
	"github.com/makeca/make-ca/internal/adapters/outbound/render"
	"github.com/makeca/make-ca/internal/application"
	"github.com/makeca/make-ca/internal/domain"
)

const testVersion = "1.0.0"

func newInitService() *application.InitService {
	return newInitServiceWithLog(logging.Discard())
}

func newInitServiceWithLog(log logrus.FieldLogger) *application.InitService {
	return application.NewInitService(
		projectfs.NewOS(log),
		config.New(),
		render.Factory(afero.NewOsFs(), log),
		gitinfo.New(),
		log,
		testVersion,
	)
}

func newGenerateService(renderers domain.RendererFactory) *application.GenerateService {
	log := logging.Discard()
	if renderers == nil {
		renderers = render.Factory(afero.NewOsFs(), log)
	}
	return application.NewGenerateService(
		config.New(),
		projectfs.NewOS(log),
		renderers,
		manifest.New(),
		log,
		testVersion,
	)
}

// initProject creates an initialized project without git.
func initProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "shop")
	_, err := newInitService().Init(application.InitRequest{Path: dir})
	require.NoError(t, err)
	return dir
}

// snapshot maps every file under root to its content.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var errDiskFull = errors.New("disk full")

// failingRenderer delegates to the real renderer until it reaches failOn.
type failingRenderer struct {
	next   domain.TemplateRenderer
	failOn string
}

func (r *failingRenderer) Render(templateID string, data any, dest string) error {
	if templateID == r.failOn {
		return errDiskFull
	}
	return r.next.Render(templateID, data, dest)
}

func failingFactory(failOn string) domain.RendererFactory {
	base := render.Factory(afero.NewOsFs(), logging.Discard())
	return func(overrideDir string) domain.TemplateRenderer {
		return &failingRenderer{next: base(overrideDir), failOn: failOn}
	}
}
