// Package commands implements the CLI commands for uplyft.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/uplyft/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "uplyft",
	Version: version.String(),
	Short:   "Upgrade legacy documentation HTML to HTML5",
	Long: `Uplyft rewrites the XHTML fragments emitted by old documentation
generators into modern HTML5.

It converts section divs, source wrappers, legacy tables and dead
anchors, optionally applies site-level rewrites (icons, figures,
heading ids), and can export the result as Markdown.

Examples:
  # Fix a single page to stdout
  uplyft fix target/site/index.html

  # Fix several pages into a directory
  uplyft fix --output fixed/ target/site/index.html target/site/usage.html

  # Export Markdown instead of HTML
  uplyft fix --format markdown --output docs/index.md target/site/index.html

  # Repair a report page using skin configuration
  uplyft fix --report-id surefire-report --site-config skin.yaml \
      target/site/surefire-report.html`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.uplyft.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".uplyft")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("UPLYFT")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
