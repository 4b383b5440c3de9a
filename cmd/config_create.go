package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alainchaple/formulario-publicaciones-ua/config"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Create a new configuration file from the example template.

If a configuration file is already in use, no new file is written.`,
	Example: `
  # Create default config at $HOME/.formulario.yaml
  formulario config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig()
	},
}

func saveDefaultConfig() error {
	configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		fmt.Printf("Config file already exists at: %s\n", configPath)
		return nil
	} else if !os.IsNotExist(statErr) {
		return fmt.Errorf("stat config file %s: %w", configPath, statErr)
	}

	if err := os.WriteFile(configPath, []byte(config.ExampleYAML()), 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", configPath, err)
	}
	fmt.Printf("New config file created at: %s\n", configPath)
	return nil
}

// resolveConfigPath picks the explicit flag path first, then the file viper
// already loaded, then the default location in the home directory.
func resolveConfigPath(flagPath, loadedPath string) (string, error) {
	if strings.TrimSpace(flagPath) != "" {
		return flagPath, nil
	}
	if strings.TrimSpace(loadedPath) != "" {
		return loadedPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".formulario.yaml"), nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
