package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmrestrepo/dictamen/internal/api"
)

var extractField string

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract a single field from a regional board ruling",
	Long: `Extract one field from a scanned regional board ruling without rendering
the full summary.

Fields:
  location   - City where the board issued the ruling
  analysis   - Analysis and conclusions section, verbatim
  conceptos  - Medical concepts considered by the board

Examples:
  dictamen extract dictamen.pdf --field location
  dictamen extract dictamen.pdf --field analysis -o text`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		logger := newLogger()
		st, err := newStack(logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		text, err := st.processor.Document(ctx, pdf, nil)
		if err != nil {
			return err
		}

		var value string
		switch extractField {
		case "location":
			value, err = st.extractor.JuntaLocation(ctx, text)
		case "analysis":
			value, err = st.extractor.AnalysisConclusions(ctx, text)
		case "conceptos":
			value, err = st.extractor.MedicalConcepts(ctx, text)
		default:
			return fmt.Errorf("unknown field %q (expected location, analysis or conceptos)", extractField)
		}
		if err != nil {
			return err
		}

		return api.Output(value)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractField, "field", "", "field to extract: location, analysis or conceptos")
	extractCmd.MarkFlagRequired("field")

	rootCmd.AddCommand(extractCmd)
}
