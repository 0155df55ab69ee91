package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitRepo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// IsGitRepo reports whether projectPath is inside a git work tree,
// including one rooted in a parent directory.
func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// Init creates a non-bare repository at projectPath.
func (g *GitInfoAdapter) Init(projectPath string) error {
	if _, err := git.PlainInit(projectPath, false); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}
