package domain

// ConfigStore reads and writes the project marker config.
type ConfigStore interface {
	Exists(projectPath string) bool
	Load(projectPath string) (ProjectConfig, error)
	Save(projectPath string, cfg ProjectConfig) error
}

// ProjectFS performs the directory operations of the planner and initializer.
type ProjectFS interface {
	EnsureDir(path string) error
	IsEmptyDir(path string) (bool, error)
}

// TemplateRenderer renders a template identified by templateID with data and
// writes the result to dest, creating parent directories and overwriting an
// existing file.
type TemplateRenderer interface {
	Render(templateID string, data any, dest string) error
}

// RendererFactory returns a renderer that prefers templates found in
// overrideDir. An empty overrideDir uses only the built-in templates.
type RendererFactory func(overrideDir string) TemplateRenderer

// ManifestStore persists the project manifest.
type ManifestStore interface {
	Load(projectPath string) (*Manifest, error)
	Save(projectPath string, m *Manifest) error
}

// GitRepo detects and creates git repositories.
type GitRepo interface {
	IsGitRepo(path string) bool
	Init(path string) error
}
