package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/makeca/make-ca/internal/adapters/outbound/tui"
	"github.com/makeca/make-ca/internal/application"
	"github.com/makeca/make-ca/internal/domain"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var (
		opts       domain.GenerateOptions
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "generate <entity>",
		Aliases: []string{"g"},
		Short:   "Generate the layers of an entity",
		Long: `Generate domain, service, infrastructure and application files for an entity.
The entity name is kebab-case (e.g. user-profile). The service layer is generated with the domain layer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir(v)
			if err != nil {
				return err
			}

			log := newLogger(v, cmd.ErrOrStderr())
			report, err := newGenerateService(log).Generate(application.GenerateRequest{
				ProjectPath: dir,
				Entity:      args[0],
				Options:     opts,
				DryRun:      dryRun,
			})
			if report != nil {
				if perr := printReport(cmd, report, jsonOutput); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.SkipDomain, "skip-domain", false, "Skip the domain and service layers")
	f.BoolVar(&opts.SkipInfrastructure, "skip-infrastructure", false, "Skip the infrastructure layer")
	f.BoolVar(&opts.SkipApplication, "skip-application", false, "Skip the application layer")
	f.BoolVar(&opts.OnlyDomain, "only-domain", false, "Generate only the domain and service layers")
	f.BoolVar(&opts.OnlyInfrastructure, "only-infrastructure", false, "Generate only the infrastructure layer")
	f.BoolVar(&opts.OnlyApplication, "only-application", false, "Generate only the application layer")
	f.BoolVar(&dryRun, "dry-run", false, "Print the planned files without writing them")
	f.BoolVar(&jsonOutput, "json", false, "Print the report as JSON")

	return cmd
}

func printReport(cmd *cobra.Command, report *domain.GenerateReport, asJSON bool) error {
	if !asJSON {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerateReport(report))
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
