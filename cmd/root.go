// Package cmd wires the folio CLI: a thin cobra layer over the
// registry application package.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbrandt/folio/internal/config"
	"github.com/nbrandt/folio/internal/log"
	application "github.com/nbrandt/folio/internal/registry/application"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Validate and inspect the portfolio project registry",
	Long: `folio loads the YAML project registry behind the portfolio site,
validates it against the project schema, and reports evidence-link
convention warnings. It is intended as a CI integrity gate: a broken
registry exits non-zero.

With no arguments the registry is validated. With --list, one line per
project is printed as "slug<TAB>title" in registry order.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runRegistry,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .folio/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to folio.log")
	rootCmd.Flags().Bool("list", false,
		"print one \"slug<TAB>title\" line per project instead of validating")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("registry_path", defaults.RegistryPath)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .folio/config.yaml (current directory)
		// 2. ~/.config/folio/config.yaml (user config)
		if _, err := os.Stat(".folio/config.yaml"); err == nil {
			viper.SetConfigFile(".folio/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "folio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("folio")
	viper.AutomaticEnv()
	// Bind explicitly so env vars apply without a config file present.
	for _, key := range []string{"site_url", "docs_url", "github_url", "docs_repo_url", "registry_path", "debug"} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine - env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			cobra.CheckErr(err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if cfg.Debug {
		if cleanup, err := log.Init("folio.log"); err == nil {
			cobra.OnFinalize(func() { cleanup() })
		}
	} else {
		log.SetEnabled(false)
	}
}

func runRegistry(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode := application.ModeValidate
	if list, _ := cmd.Flags().GetBool("list"); list {
		mode = application.ModeList
	}

	if code := application.Run(mode, application.NewDeps(cfg)); code != 0 {
		os.Exit(code)
	}
	return nil
}

// SetVersion sets the version string for the root command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
