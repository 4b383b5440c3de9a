package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alainchaple/formulario-publicaciones-ua/storage"
)

var (
	exportStorePath string
	exportOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current publications store",
	Long: `Write the current store content (header plus all records) to a file,
or to stdout when no output path is given.`,
	Example: `
  # Export to a file
  formulario export --store ./data.csv --output ./publicaciones_ua.csv

  # Print to stdout
  formulario export --store ./data.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(exportStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		if strings.TrimSpace(exportOutput) == "" {
			_, err := store.CopyTo(cmd.OutOrStdout())
			return err
		}

		out, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create export file %s: %w", exportOutput, err)
		}
		defer out.Close()

		written, err := store.CopyTo(out)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d bytes to %s\n", written, exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportStorePath, "store", "./data.csv", "Path to the publications CSV store")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file path (default: stdout)")
}
