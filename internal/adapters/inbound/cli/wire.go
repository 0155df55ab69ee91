package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/makeca/make-ca/internal/adapters/outbound/config"
	"github.com/makeca/make-ca/internal/adapters/outbound/gitinfo"
	"github.com/makeca/make-ca/internal/adapters/outbound/logging"
	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/adapters/outbound/projectfs"
	"github.com/makeca/make-ca/internal/adapters/outbound/render"
	"github.com/makeca/make-ca/internal/application"
)

func newInitService(log *logrus.Logger) *application.InitService {
	entry := logging.WithVersion(log, version)
	return application.NewInitService(
		projectfs.NewOS(entry),
		config.New(),
		render.Factory(afero.NewOsFs(), entry),
		gitinfo.New(),
		entry,
		version,
	)
}

func newGenerateService(log *logrus.Logger) *application.GenerateService {
	entry := logging.WithVersion(log, version)
	return application.NewGenerateService(
		config.New(),
		projectfs.NewOS(entry),
		render.Factory(afero.NewOsFs(), entry),
		manifest.New(),
		entry,
		version,
	)
}
