package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/makeca/make-ca/internal/adapters/outbound/config"
	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/adapters/outbound/tui"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir(v)
			if err != nil {
				return err
			}
			if _, err := config.New().Load(dir); err != nil {
				return err
			}

			m, err := manifest.New().Load(dir)
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling manifest: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderEntities(m))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the manifest as JSON")

	return cmd
}
