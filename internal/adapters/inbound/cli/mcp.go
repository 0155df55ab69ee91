package cli

import (
	mcpadapter "github.com/makeca/make-ca/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMCPCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the make-ca MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(v))
	return cmd
}

func newMCPServeCmd(v *viper.Viper) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start make-ca MCP server (stdio)",
		Long:  "Start the make-ca MCP server using stdio transport. This allows AI coding assistants to format entity names, initialize projects and generate entities.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				dir, err := workDir(v)
				if err != nil {
					return err
				}
				projectPath = dir
			}
			s := mcpadapter.NewMakeCAMCPServer(projectPath, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to the working directory)")

	return cmd
}
