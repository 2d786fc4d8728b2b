package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spigell/resumefit/internal/analysis"
	"github.com/spigell/resumefit/internal/render"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a saved analyzer response (file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := normalize(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringP("output", "o", outputJSON, "output format: text or json")
}

func normalize(cmd *cobra.Command, args []string) error {
	var (
		raw []byte
		err error
	)

	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	res := analysis.NormalizeJSON(raw)

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputText:
		if !res.HasContent() {
			_, err := fmt.Fprintln(cmd.ErrOrStderr(), "nothing to show")
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Card(res, 0))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}
