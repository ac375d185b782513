package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbrandt/folio/internal/config"
	"github.com/nbrandt/folio/internal/presentation"
	application "github.com/nbrandt/folio/internal/registry/application"
)

var registryShowCmd = &cobra.Command{
	Use:   "registry:show <slug>",
	Short: "Show one project in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		service := application.NewFileService(cfg.RegistryPath, cfg.BaseURLs())
		project, found, err := service.BySlug(context.Background(), slug)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no project with slug %q", slug)
		}

		links := application.EvidenceLinks(config.NormalizeBaseURL(cfg.DocsURL), project)
		fmt.Fprint(cmd.OutOrStdout(), presentation.RenderProject(project, links))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registryShowCmd)
}
