package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alainchaple/formulario-publicaciones-ua/storage"
)

var (
	resetStorePath string
	resetYes       bool
)

var (
	resetPromptInput  io.Reader = os.Stdin
	resetPromptOutput io.Writer = os.Stdout
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Truncate the publications store back to its header row",
	Long: `Destructive store cleanup command.

All records are destroyed irrecoverably; only the header row remains.
Without --yes, an interactive security prompt requires typing exactly "Y".`,
	Example: `
  # Reset with interactive confirmation
  formulario reset --store ./data.csv

  # Reset without prompting (scripts)
  formulario reset --store ./data.csv --yes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			confirmed, err := confirmResetPrompt(resetPromptInput, resetPromptOutput, resetStorePath)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("reset aborted: confirmation was not 'Y'")
			}
		}

		store, err := storage.Open(resetStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Printf("Reset store to header row: %s\n", resetStorePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringVar(&resetStorePath, "store", "./data.csv", "Path to the publications CSV store")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the interactive confirmation prompt")
}

func confirmResetPrompt(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("reset confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Reset store file %q to its header row? Type Y to confirm: ", path); err != nil {
		return false, fmt.Errorf("write reset confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, fmt.Errorf("read reset confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
