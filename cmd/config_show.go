package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alainchaple/formulario-publicaciones-ua/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  formulario config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		}
		fmt.Println("Configuration:")
		fmt.Printf("server.port: %d\n", cfg.Server.Port)
		fmt.Printf("store.path: %s\n", cfg.Store.Path)
		if cfg.Admin.Token == "" {
			fmt.Println("admin.token: (unset, reset endpoint disabled)")
		} else {
			fmt.Println("admin.token: (set)")
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
