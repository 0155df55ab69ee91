// Package render renders make-ca templates to files.
//
// Templates are looked up by identifier (e.g. "domain/entity/Entity.ts").
// A project may override any built-in template by placing
// <templates_dir>/<identifier>.tmpl on disk.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/makeca/make-ca/internal/domain"
	"github.com/makeca/make-ca/internal/domain/naming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

//go:embed templates
var embedded embed.FS

const (
	embeddedRoot = "templates"
	extension    = ".tmpl"
)

var funcMap = template.FuncMap{
	"kebab":  naming.Kebab,
	"camel":  naming.Camel,
	"pascal": naming.Pascal,
	"plural": naming.Plural,
	"snake":  func(s string) string { return strings.ReplaceAll(naming.Kebab(s), "-", "_") },
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
}

// Renderer implements domain.TemplateRenderer.
type Renderer struct {
	fs          afero.Fs
	overrideDir string
	log         logrus.FieldLogger
}

// New creates a Renderer writing to fsys. Templates under overrideDir on
// fsys take precedence over the built-in set; pass "" to disable overrides.
func New(fsys afero.Fs, overrideDir string, log logrus.FieldLogger) *Renderer {
	return &Renderer{fs: fsys, overrideDir: overrideDir, log: log}
}

// Factory returns a domain.RendererFactory producing Renderers on fsys.
func Factory(fsys afero.Fs, log logrus.FieldLogger) domain.RendererFactory {
	return func(overrideDir string) domain.TemplateRenderer {
		return New(fsys, overrideDir, log)
	}
}

// Render executes the template templateID with data and writes the result
// to dest, replacing any existing file.
func (r *Renderer) Render(templateID string, data any, dest string) error {
	src, origin, err := r.load(templateID)
	if err != nil {
		return err
	}

	tmpl, err := template.New(templateID).Funcs(funcMap).Option("missingkey=error").Parse(src)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", templateID, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering template %s: %w", templateID, err)
	}

	if err := r.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", dest, err)
	}
	if err := afero.WriteFile(r.fs, dest, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	r.log.WithFields(logrus.Fields{
		"template": templateID,
		"source":   origin,
		"dest":     dest,
	}).Debug("rendered template")
	return nil
}

// load returns the template source and where it came from.
func (r *Renderer) load(templateID string) (string, string, error) {
	if r.overrideDir != "" {
		p := filepath.Join(r.overrideDir, filepath.FromSlash(templateID)+extension)
		if exists, _ := afero.Exists(r.fs, p); exists {
			data, err := afero.ReadFile(r.fs, p)
			if err != nil {
				return "", "", fmt.Errorf("reading template override %s: %w", p, err)
			}
			return string(data), p, nil
		}
	}

	data, err := embedded.ReadFile(path.Join(embeddedRoot, templateID+extension))
	if err != nil {
		return "", "", fmt.Errorf("template %s not found: %w", templateID, err)
	}
	return string(data), "builtin", nil
}

// Builtin lists the identifiers of all embedded templates, sorted.
func Builtin() ([]string, error) {
	var ids []string
	err := fs.WalkDir(embedded, embeddedRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, extension) {
			return nil
		}
		id := strings.TrimSuffix(strings.TrimPrefix(p, embeddedRoot+"/"), extension)
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
