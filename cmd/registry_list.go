package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbrandt/folio/internal/config"
	"github.com/nbrandt/folio/internal/presentation"
	application "github.com/nbrandt/folio/internal/registry/application"
)

var listJSON bool

var registryListCmd = &cobra.Command{
	Use:   "registry:list",
	Short: "List all projects in the registry",
	Long: `List all projects in registry order.

The default output is one "slug<TAB>title" line per project, suitable
for shell pipelines. Use --json for the full records including
materialized evidence links.

Examples:
  # List all projects
  folio registry:list

  # Full records as JSON
  folio registry:list --json

  # Parse specific fields with jq
  folio registry:list --json | jq '.[].slug'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !listJSON {
			if code := application.Run(application.ModeList, application.NewDeps(cfg)); code != 0 {
				os.Exit(code)
			}
			return nil
		}

		service := application.NewFileService(cfg.RegistryPath, cfg.BaseURLs())
		projects, err := service.All(context.Background())
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		dtos := presentation.FromDomainProjects(projects, config.NormalizeBaseURL(cfg.DocsURL))

		return formatter.FormatProjects(dtos)
	},
}

func init() {
	registryListCmd.Flags().BoolVar(&listJSON, "json", false, "output full project records as JSON")
	rootCmd.AddCommand(registryListCmd)
}
