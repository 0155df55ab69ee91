package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/makeca/make-ca/internal/adapters/outbound/tui"
	"github.com/makeca/make-ca/internal/application"
	"github.com/makeca/make-ca/internal/domain"
)

const defaultProjectPath = "my-clean-project"

func newInitCmd(v *viper.Viper) *cobra.Command {
	var (
		path  string
		noGit bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a clean architecture project skeleton",
		Long:  "Create the source directories, shared core files and .make-ca.yaml of a new project. A git repository is initialized unless --no-git is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir(v)
			if err != nil {
				return err
			}
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}

			log := newLogger(v, cmd.ErrOrStderr())
			report, err := newInitService(log).Init(application.InitRequest{Path: path, Git: !noGit})
			if err != nil {
				if domain.IsKind(err, domain.KindAlreadyInitialized) {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderInitReport(report))
					return nil
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInitReport(report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", defaultProjectPath, "Project directory")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "Do not initialize a git repository")

	return cmd
}
