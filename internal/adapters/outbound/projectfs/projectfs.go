// Package projectfs creates the directories of a scaffolded project.
package projectfs

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FS implements domain.ProjectFS on top of an afero filesystem.
type FS struct {
	fs  afero.Fs
	log logrus.FieldLogger
}

// New creates an FS backed by fsys.
func New(fsys afero.Fs, log logrus.FieldLogger) *FS {
	return &FS{fs: fsys, log: log}
}

// NewOS creates an FS backed by the operating system filesystem.
func NewOS(log logrus.FieldLogger) *FS {
	return New(afero.NewOsFs(), log)
}

// EnsureDir creates path and its parents. An existing directory is not an
// error; an existing file at path is.
func (f *FS) EnsureDir(path string) error {
	info, err := f.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		f.log.WithField("dir", path).Debug("directory already exists")
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	if err := f.fs.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	f.log.WithField("dir", path).Debug("created directory")
	return nil
}

// IsEmptyDir reports whether the directory at path has no entries.
func (f *FS) IsEmptyDir(path string) (bool, error) {
	empty, err := afero.IsEmpty(f.fs, path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return empty, nil
}
