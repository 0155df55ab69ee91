package domain

import (
	"path/filepath"
	"sort"
)

// DefaultSourceRoot is the source directory used when the project config
// does not name one.
const DefaultSourceRoot = "src"

// DirKey selects one directory of a DirectorySet.
type DirKey string

const (
	DirDomain    DirKey = "domain"
	DirService   DirKey = "service"
	DirInfra     DirKey = "infrastructure"
	DirApp       DirKey = "application"
	DirDIFeature DirKey = "di-feature"
)

// DirectorySet holds the absolute destination directories for one entity.
type DirectorySet struct {
	DomainDir    string `json:"domain_dir"`
	ServiceDir   string `json:"service_dir"`
	InfraDir     string `json:"infra_dir"`
	AppDir       string `json:"app_dir"`
	DIFeatureDir string `json:"di_feature_dir"`
}

// PlanDirectories computes the directory set for the entity named kebab
// inside the project at root.
func PlanDirectories(root, sourceRoot, kebab string) DirectorySet {
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}
	src := filepath.Join(root, sourceRoot)
	return DirectorySet{
		DomainDir:    filepath.Join(src, "core", "domain", kebab),
		ServiceDir:   filepath.Join(src, "core", "service", kebab),
		InfraDir:     filepath.Join(src, "infrastructure", "persistence", "typeorm", kebab),
		AppDir:       filepath.Join(src, "application", "api", "http-rest", kebab),
		DIFeatureDir: filepath.Join(src, "application", "di", "feature"),
	}
}

// Path returns the directory selected by k, or "" for an unknown key.
func (d DirectorySet) Path(k DirKey) string {
	switch k {
	case DirDomain:
		return d.DomainDir
	case DirService:
		return d.ServiceDir
	case DirInfra:
		return d.InfraDir
	case DirApp:
		return d.AppDir
	case DirDIFeature:
		return d.DIFeatureDir
	}
	return ""
}

// ForLayer returns the directories the given layer writes into, sorted.
func (d DirectorySet) ForLayer(l Layer) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range LayerTemplates[l] {
		dir := d.Path(p.Dir)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// SkeletonDirs lists the project-relative directories created by init.
func SkeletonDirs(sourceRoot string) []string {
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}
	return []string{
		filepath.Join(sourceRoot, "core", "common"),
		filepath.Join(sourceRoot, "core", "domain"),
		filepath.Join(sourceRoot, "core", "service"),
		filepath.Join(sourceRoot, "infrastructure", "persistence", "typeorm"),
		filepath.Join(sourceRoot, "application", "api", "http-rest"),
		filepath.Join(sourceRoot, "application", "di", "feature"),
	}
}
