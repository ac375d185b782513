package cmd

import (
	"os"

	"github.com/spf13/cobra"

	application "github.com/nbrandt/folio/internal/registry/application"
)

var registryValidateCmd = &cobra.Command{
	Use:   "registry:validate",
	Short: "Validate the registry and report convention warnings",
	Long: `Load and validate the project registry, exit non-zero on failure.

Every project is checked against the schema (unique slug, required
fields, enum values, URL shapes). Evidence links are materialized and
linted against documentation conventions; lint findings are printed as
warnings but never fail validation. Intended as a CI gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if code := application.Run(application.ModeValidate, application.NewDeps(cfg)); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registryValidateCmd)
}
