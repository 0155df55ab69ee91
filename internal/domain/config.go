package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ConfigFileName is the project marker written by init.
const ConfigFileName = ".make-ca.yaml"

// ProjectConfig holds project-level configuration loaded from .make-ca.yaml.
type ProjectConfig struct {
	Version      string `yaml:"version"                 json:"version"`
	SourceRoot   string `yaml:"source_root"             json:"source_root"`
	TemplatesDir string `yaml:"templates_dir,omitempty" json:"templates_dir,omitempty"`
}

// DefaultConfig returns the configuration init writes for a new project.
func DefaultConfig(version string) ProjectConfig {
	return ProjectConfig{
		Version:    version,
		SourceRoot: DefaultSourceRoot,
	}
}

// EffectiveSourceRoot returns SourceRoot, falling back to the default.
func (c ProjectConfig) EffectiveSourceRoot() string {
	if c.SourceRoot == "" {
		return DefaultSourceRoot
	}
	return c.SourceRoot
}

// ResolveTemplatesDir returns the absolute template override directory, or
// "" when none is configured.
func (c ProjectConfig) ResolveTemplatesDir(root string) string {
	if c.TemplatesDir == "" {
		return ""
	}
	if filepath.IsAbs(c.TemplatesDir) {
		return c.TemplatesDir
	}
	return filepath.Join(root, c.TemplatesDir)
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. version must be semver if present
	if c.Version != "" && !isDevVersion(c.Version) {
		if _, err := parseVersion(c.Version); err != nil {
			return fmt.Errorf("invalid version %q: %w", c.Version, err)
		}
	}

	// 2. source_root must stay inside the project
	if c.SourceRoot != "" {
		if filepath.IsAbs(c.SourceRoot) {
			return fmt.Errorf("source_root %q must be relative to the project root", c.SourceRoot)
		}
		clean := filepath.Clean(c.SourceRoot)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("source_root %q must not leave the project root", c.SourceRoot)
		}
	}

	return nil
}

// CheckCompatible refuses projects initialized by a newer major version of
// the tool. Development builds skip the check.
func (c ProjectConfig) CheckCompatible(toolVersion string) error {
	if c.Version == "" || isDevVersion(c.Version) || isDevVersion(toolVersion) {
		return nil
	}
	project, err := parseVersion(c.Version)
	if err != nil {
		return fmt.Errorf("parsing project version %q: %w", c.Version, err)
	}
	tool, err := parseVersion(toolVersion)
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}
	if project.Major() > tool.Major() {
		return NewUserError(KindIncompatible,
			fmt.Sprintf("project was initialized by make-ca %s, this is make-ca %s", project, tool),
			"upgrade make-ca to a newer version",
		)
	}
	return nil
}

func isDevVersion(v string) bool {
	return v == "" || v == "dev"
}

func parseVersion(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
