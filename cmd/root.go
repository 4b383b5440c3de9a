package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alainchaple/formulario-publicaciones-ua/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "formulario",
	Short: "Collect academic publication metadata into a shared CSV store.",
	Long: `Run the publication submission service and manage its data store.

The service serves a single-entry web form and a bulk spreadsheet import,
validates submissions, and appends records to one append-only CSV file.
`,
	Example: `
  # Create a configuration file
  formulario config create

  # Start the web service
  formulario serve --port 10000 --store ./data.csv

  # Export the current store
  formulario export --output ./publicaciones_ua.csv

  # Wipe the store back to its header row
  formulario reset --store ./data.csv --yes
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.formulario.yaml, then ./.formulario.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".formulario" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".formulario")
	}

	viper.SetEnvPrefix("FORMULARIO")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
