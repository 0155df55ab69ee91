package application

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/makeca/make-ca/internal/domain"
	"github.com/makeca/make-ca/internal/domain/naming"
)

// GenerateRequest describes one generate run.
type GenerateRequest struct {
	ProjectPath string
	Entity      string
	Options     domain.GenerateOptions
	DryRun      bool
}

// GenerateService orchestrates entity generation:
// validate → load config → format name → plan directories → render layers → record manifest.
type GenerateService struct {
	config    domain.ConfigStore
	fs        domain.ProjectFS
	renderers domain.RendererFactory
	manifest  domain.ManifestStore
	log       logrus.FieldLogger
	version   string
}

func NewGenerateService(
	config domain.ConfigStore,
	fs domain.ProjectFS,
	renderers domain.RendererFactory,
	manifest domain.ManifestStore,
	log logrus.FieldLogger,
	version string,
) *GenerateService {
	return &GenerateService{
		config:    config,
		fs:        fs,
		renderers: renderers,
		manifest:  manifest,
		log:       log,
		version:   version,
	}
}

// Generate renders every included layer for req.Entity. Layers run in
// fixed order and the first failing layer stops the run; files written
// before the failure stay on disk. The returned report is non-nil whenever
// generation started, including on layer failure.
func (s *GenerateService) Generate(req GenerateRequest) (*domain.GenerateReport, error) {
	// 1. Validate entity
	entity := domain.NormalizeEntityName(req.Entity)
	if err := domain.ValidateEntityName(entity); err != nil {
		return nil, err
	}

	// 2. Load config (missing marker → not initialized)
	cfg, err := s.config.Load(req.ProjectPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckCompatible(s.version); err != nil {
		return nil, err
	}

	// 3. Format name and plan directories
	formats, err := naming.Format(entity)
	if err != nil {
		return nil, fmt.Errorf("formatting entity name: %w", err)
	}
	dirs := domain.PlanDirectories(req.ProjectPath, cfg.EffectiveSourceRoot(), formats.KebabCase)
	renderer := s.renderers(cfg.ResolveTemplatesDir(req.ProjectPath))
	data := domain.TemplateData{Entity: formats}

	report := &domain.GenerateReport{
		ProjectPath: req.ProjectPath,
		Entity:      formats,
		DryRun:      req.DryRun,
	}

	// 4. Render layers in order
	for _, layer := range domain.Layers {
		if !req.Options.Includes(layer) {
			report.Layers = append(report.Layers, domain.LayerResult{Layer: layer, Skipped: true})
			continue
		}

		result, err := s.generateLayer(layer, dirs, renderer, data, req)
		report.Layers = append(report.Layers, result)
		if err != nil {
			return report, fmt.Errorf("generating %s layer: %w", layer, err)
		}
	}

	// 5. Record manifest
	if !req.DryRun {
		m, err := s.manifest.Load(req.ProjectPath)
		if err != nil {
			return report, fmt.Errorf("loading manifest: %w", err)
		}
		m.Record(formats.KebabCase, report.GeneratedLayers())
		if err := s.manifest.Save(req.ProjectPath, m); err != nil {
			return report, fmt.Errorf("saving manifest: %w", err)
		}
	}

	return report, nil
}

func (s *GenerateService) generateLayer(
	layer domain.Layer,
	dirs domain.DirectorySet,
	renderer domain.TemplateRenderer,
	data domain.TemplateData,
	req GenerateRequest,
) (domain.LayerResult, error) {
	result := domain.LayerResult{Layer: layer}
	log := s.log.WithFields(logrus.Fields{"entity": data.Entity.KebabCase, "layer": layer})

	if !req.DryRun {
		for _, dir := range dirs.ForLayer(layer) {
			if err := s.fs.EnsureDir(dir); err != nil {
				result.Error = err.Error()
				return result, err
			}
		}
	}

	for _, pair := range domain.LayerTemplates[layer] {
		dest, err := pair.Destination(dirs, data.Entity)
		if err != nil {
			result.Error = err.Error()
			return result, err
		}
		if !req.DryRun {
			if err := renderer.Render(pair.Template, data, dest); err != nil {
				result.Error = err.Error()
				return result, err
			}
		}
		result.Files = append(result.Files, relPath(req.ProjectPath, dest))
	}

	log.WithField("files", len(result.Files)).Debug("layer generated")
	return result, nil
}

func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
