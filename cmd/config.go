package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage formulario configuration file values.",
	Long: `Create and display the formulario configuration file.

The configuration stores application-wide values:
- server.port
- store.path
- admin.token`,
	Example: `
  # Create default config in $HOME/.formulario.yaml
  formulario config create

  # Show active config and source file
  formulario config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
