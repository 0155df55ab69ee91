package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	v := newSettings()

	cmd := &cobra.Command{
		Use:           "make-ca",
		Short:         "Scaffold clean architecture projects",
		Long:          "make-ca lays out a clean architecture project and generates the domain, service, infrastructure and application files of an entity.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	cmd.PersistentFlags().String("dir", "", "Working directory (defaults to the current directory)")
	mustBindPFlag(v, keyVerbose, cmd.PersistentFlags().Lookup("verbose"))
	mustBindPFlag(v, keyDir, cmd.PersistentFlags().Lookup("dir"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(v))
	cmd.AddCommand(newGenerateCmd(v))
	cmd.AddCommand(newListCmd(v))
	cmd.AddCommand(newMCPCmd(v))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// ExecuteForTest runs root the way Execute does, printing errors to the
// command's error stream.
func ExecuteForTest(root *cobra.Command) error {
	return execute(root)
}

func Execute() error {
	return execute(newRootCmd())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}
