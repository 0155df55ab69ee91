package application

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/makeca/make-ca/internal/domain"
)

// InitRequest describes one init run.
type InitRequest struct {
	Path string
	Git  bool
}

// InitService lays out a new project:
// create root → detect marker → skeleton dirs → init templates → config → git.
type InitService struct {
	fs        domain.ProjectFS
	config    domain.ConfigStore
	renderers domain.RendererFactory
	git       domain.GitRepo
	log       logrus.FieldLogger
	version   string
}

func NewInitService(
	fs domain.ProjectFS,
	config domain.ConfigStore,
	renderers domain.RendererFactory,
	git domain.GitRepo,
	log logrus.FieldLogger,
	version string,
) *InitService {
	return &InitService{
		fs:        fs,
		config:    config,
		renderers: renderers,
		git:       git,
		log:       log,
		version:   version,
	}
}

// Init creates the project skeleton at req.Path. An already initialized
// project is left untouched: the report has AlreadyInitialized set and the
// error is a UserError of kind KindAlreadyInitialized.
func (s *InitService) Init(req InitRequest) (*domain.InitReport, error) {
	root, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", req.Path, err)
	}

	// 1. Create root
	if err := s.fs.EnsureDir(root); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	report := &domain.InitReport{ProjectPath: root}

	// 2. Non-empty notice
	empty, err := s.fs.IsEmptyDir(root)
	if err != nil {
		return nil, fmt.Errorf("inspecting project directory: %w", err)
	}
	if !empty {
		report.NonEmpty = true
		s.log.WithField("path", root).Debug("directory is not empty, some files might be overwritten")
	}

	// 3. Marker check
	if s.config.Exists(root) {
		report.AlreadyInitialized = true
		return report, domain.NewUserError(domain.KindAlreadyInitialized,
			"Project is already initialized",
			"make-ca generate <entity>",
		)
	}

	cfg := domain.DefaultConfig(s.version)

	// 4. Skeleton directories
	for _, dir := range domain.SkeletonDirs(cfg.SourceRoot) {
		if err := s.fs.EnsureDir(filepath.Join(root, dir)); err != nil {
			return report, fmt.Errorf("creating %s: %w", dir, err)
		}
		report.Directories = append(report.Directories, filepath.ToSlash(dir))
	}

	// 5. Init templates
	renderer := s.renderers("")
	data := domain.ProjectData{
		Name:       filepath.Base(root),
		SourceRoot: cfg.SourceRoot,
		Version:    s.version,
	}
	for _, t := range domain.InitTemplates {
		dest, err := t.Destination(root, data)
		if err != nil {
			return report, err
		}
		if err := renderer.Render(t.Template, data, dest); err != nil {
			return report, err
		}
		report.Files = append(report.Files, relPath(root, dest))
	}

	// 6. Marker
	if err := s.config.Save(root, cfg); err != nil {
		return report, fmt.Errorf("saving config: %w", err)
	}
	report.Files = append(report.Files, domain.ConfigFileName)

	// 7. Git
	if req.Git && !s.git.IsGitRepo(root) {
		if err := s.git.Init(root); err != nil {
			return report, err
		}
		report.GitInitialized = true
	}

	s.log.WithFields(logrus.Fields{
		"path":  root,
		"files": len(report.Files),
	}).Debug("project initialized")
	return report, nil
}
